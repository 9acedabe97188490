package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/usecase/holiday"
	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
)

// HolidayController handles holiday and holiday daily expense endpoints.
type HolidayController struct {
	createUseCase       *holiday.CreateHolidayUseCase
	listUseCase         *holiday.ListHolidaysUseCase
	updateUseCase       *holiday.UpdateHolidayUseCase
	deleteUseCase       *holiday.DeleteHolidayUseCase
	addExpenseUseCase   *holiday.AddDailyExpenseUseCase
	listExpensesUseCase *holiday.ListDailyExpensesUseCase
	updateExpenseUC     *holiday.UpdateDailyExpenseUseCase
	deleteExpenseUC     *holiday.DeleteDailyExpenseUseCase
	getCostsUseCase     *holiday.GetHolidayCostsUseCase
}

// NewHolidayController creates a new holiday controller instance.
func NewHolidayController(
	createUseCase *holiday.CreateHolidayUseCase,
	listUseCase *holiday.ListHolidaysUseCase,
	updateUseCase *holiday.UpdateHolidayUseCase,
	deleteUseCase *holiday.DeleteHolidayUseCase,
	addExpenseUseCase *holiday.AddDailyExpenseUseCase,
	listExpensesUseCase *holiday.ListDailyExpensesUseCase,
	updateExpenseUC *holiday.UpdateDailyExpenseUseCase,
	deleteExpenseUC *holiday.DeleteDailyExpenseUseCase,
	getCostsUseCase *holiday.GetHolidayCostsUseCase,
) *HolidayController {
	return &HolidayController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		addExpenseUseCase:   addExpenseUseCase,
		listExpensesUseCase: listExpensesUseCase,
		updateExpenseUC:     updateExpenseUC,
		deleteExpenseUC:     deleteExpenseUC,
		getCostsUseCase:     getCostsUseCase,
	}
}

// Create handles POST /holidays requests.
func (c *HolidayController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateHolidayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	departureDate, ok := parseDate(ctx, req.DepartureDate)
	if !ok {
		return
	}

	input := holiday.CreateHolidayInput{
		UserID:            userID,
		Description:       req.Description,
		TravelMode:        entity.TravelMode(req.TravelMode),
		DepartureDate:     departureDate,
		Days:              req.Days,
		TransportCost:     decimal.NewFromFloat(req.TransportCost),
		AccommodationCost: decimal.NewFromFloat(req.AccommodationCost),
		InsuranceCost:     decimal.NewFromFloat(req.InsuranceCost),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHolidayResponse(output.Holiday))
}

// List handles GET /holidays requests.
func (c *HolidayController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), holiday.ListHolidaysInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHolidayListResponse(output.Holidays))
}

// Update handles PATCH /holidays/:id requests.
func (c *HolidayController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	holidayID, ok := parseIDParam(ctx, "id", "holiday")
	if !ok {
		return
	}

	var req dto.UpdateHolidayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := holiday.UpdateHolidayInput{
		ID:          holidayID,
		UserID:      userID,
		Description: req.Description,
		Days:        req.Days,
	}

	if req.TravelMode != nil {
		travelMode := entity.TravelMode(*req.TravelMode)
		input.TravelMode = &travelMode
	}
	if req.DepartureDate != nil {
		departureDate, ok := parseDate(ctx, *req.DepartureDate)
		if !ok {
			return
		}
		input.DepartureDate = &departureDate
	}
	if req.TransportCost != nil {
		cost := decimal.NewFromFloat(*req.TransportCost)
		input.TransportCost = &cost
	}
	if req.AccommodationCost != nil {
		cost := decimal.NewFromFloat(*req.AccommodationCost)
		input.AccommodationCost = &cost
	}
	if req.InsuranceCost != nil {
		cost := decimal.NewFromFloat(*req.InsuranceCost)
		input.InsuranceCost = &cost
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHolidayResponse(output.Holiday))
}

// Delete handles DELETE /holidays/:id requests. Deleting a holiday also
// removes its daily expenses.
func (c *HolidayController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	holidayID, ok := parseIDParam(ctx, "id", "holiday")
	if !ok {
		return
	}

	input := holiday.DeleteHolidayInput{
		ID:     holidayID,
		UserID: userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddDailyExpense handles POST /holidays/:id/daily-expenses requests.
func (c *HolidayController) AddDailyExpense(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	holidayID, ok := parseIDParam(ctx, "id", "holiday")
	if !ok {
		return
	}

	var req dto.AddDailyExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := holiday.AddDailyExpenseInput{
		UserID:      userID,
		HolidayID:   holidayID,
		DayNumber:   req.DayNumber,
		Type:        entity.DailyExpenseType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		HasReceipt:  req.HasReceipt,
	}

	output, err := c.addExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDailyExpenseResponse(output.Expense))
}

// ListDailyExpenses handles GET /holidays/:id/daily-expenses requests.
// An optional ?day=N query filters to a single day.
func (c *HolidayController) ListDailyExpenses(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	holidayID, ok := parseIDParam(ctx, "id", "holiday")
	if !ok {
		return
	}

	input := holiday.ListDailyExpensesInput{
		UserID:    userID,
		HolidayID: holidayID,
	}

	if dayStr := ctx.Query("day"); dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid day filter",
			})
			return
		}
		input.Day = &day
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyExpenseListResponse(output.Expenses))
}

// UpdateDailyExpense handles PATCH /holidays/:id/daily-expenses/:expenseId requests.
func (c *HolidayController) UpdateDailyExpense(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	expenseID, ok := parseIDParam(ctx, "expenseId", "daily expense")
	if !ok {
		return
	}

	var req dto.UpdateDailyExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := holiday.UpdateDailyExpenseInput{
		ID:          expenseID,
		UserID:      userID,
		DayNumber:   req.DayNumber,
		Description: req.Description,
		HasReceipt:  req.HasReceipt,
	}

	if req.Type != nil {
		expenseType := entity.DailyExpenseType(*req.Type)
		input.Type = &expenseType
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateExpenseUC.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyExpenseResponse(output.Expense))
}

// DeleteDailyExpense handles DELETE /holidays/:id/daily-expenses/:expenseId requests.
func (c *HolidayController) DeleteDailyExpense(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	expenseID, ok := parseIDParam(ctx, "expenseId", "daily expense")
	if !ok {
		return
	}

	input := holiday.DeleteDailyExpenseInput{
		ID:     expenseID,
		UserID: userID,
	}

	if err := c.deleteExpenseUC.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetCosts handles GET /holidays/:id/costs requests.
func (c *HolidayController) GetCosts(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	holidayID, ok := parseIDParam(ctx, "id", "holiday")
	if !ok {
		return
	}

	input := holiday.GetHolidayCostsInput{
		UserID:    userID,
		HolidayID: holidayID,
	}

	output, err := c.getCostsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHolidayCostsResponse(output))
}
