package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/usecase/vehicle"
	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
)

// VehicleController handles vehicle and vehicle expense endpoints.
type VehicleController struct {
	createUseCase        *vehicle.CreateVehicleUseCase
	listUseCase          *vehicle.ListVehiclesUseCase
	updateUseCase        *vehicle.UpdateVehicleUseCase
	deleteUseCase        *vehicle.DeleteVehicleUseCase
	createExpenseUseCase *vehicle.CreateVehicleExpenseUseCase
	updateExpenseUseCase *vehicle.UpdateVehicleExpenseUseCase
	deleteExpenseUseCase *vehicle.DeleteVehicleExpenseUseCase
	getCostsUseCase      *vehicle.GetVehicleCostsUseCase
}

// NewVehicleController creates a new vehicle controller instance.
func NewVehicleController(
	createUseCase *vehicle.CreateVehicleUseCase,
	listUseCase *vehicle.ListVehiclesUseCase,
	updateUseCase *vehicle.UpdateVehicleUseCase,
	deleteUseCase *vehicle.DeleteVehicleUseCase,
	createExpenseUseCase *vehicle.CreateVehicleExpenseUseCase,
	updateExpenseUseCase *vehicle.UpdateVehicleExpenseUseCase,
	deleteExpenseUseCase *vehicle.DeleteVehicleExpenseUseCase,
	getCostsUseCase *vehicle.GetVehicleCostsUseCase,
) *VehicleController {
	return &VehicleController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		createExpenseUseCase: createExpenseUseCase,
		updateExpenseUseCase: updateExpenseUseCase,
		deleteExpenseUseCase: deleteExpenseUseCase,
		getCostsUseCase:      getCostsUseCase,
	}
}

// Create handles POST /vehicles requests.
func (c *VehicleController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	registrationDue, ok := parseDatePtr(ctx, req.RegistrationDue)
	if !ok {
		return
	}
	insuranceDue, ok := parseDatePtr(ctx, req.InsuranceDue)
	if !ok {
		return
	}
	serviceDue, ok := parseDatePtr(ctx, req.ServiceDue)
	if !ok {
		return
	}

	input := vehicle.CreateVehicleInput{
		UserID:             userID,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		FuelType:           entity.FuelType(req.FuelType),
		RegistrationDue:    registrationDue,
		InsuranceDue:       insuranceDue,
		ServiceDue:         serviceDue,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVehicleResponse(output.Vehicle))
}

// List handles GET /vehicles requests.
func (c *VehicleController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), vehicle.ListVehiclesInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleListResponse(output.Vehicles))
}

// Update handles PATCH /vehicles/:id requests.
func (c *VehicleController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id", "vehicle")
	if !ok {
		return
	}

	var req dto.UpdateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := vehicle.UpdateVehicleInput{
		ID:                 vehicleID,
		UserID:             userID,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
	}

	if req.FuelType != nil {
		fuelType := entity.FuelType(*req.FuelType)
		input.FuelType = &fuelType
	}
	registrationDue, ok := parseDatePtr(ctx, req.RegistrationDue)
	if !ok {
		return
	}
	input.RegistrationDue = registrationDue

	insuranceDue, ok := parseDatePtr(ctx, req.InsuranceDue)
	if !ok {
		return
	}
	input.InsuranceDue = insuranceDue

	serviceDue, ok := parseDatePtr(ctx, req.ServiceDue)
	if !ok {
		return
	}
	input.ServiceDue = serviceDue

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(output.Vehicle))
}

// Delete handles DELETE /vehicles/:id requests. Deleting a vehicle also
// removes its expense records.
func (c *VehicleController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id", "vehicle")
	if !ok {
		return
	}

	input := vehicle.DeleteVehicleInput{
		ID:     vehicleID,
		UserID: userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateExpense handles POST /vehicles/:id/expenses requests.
func (c *VehicleController) CreateExpense(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id", "vehicle")
	if !ok {
		return
	}

	var req dto.CreateVehicleExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date, ok := parseDate(ctx, req.Date)
	if !ok {
		return
	}

	input := vehicle.CreateVehicleExpenseInput{
		UserID:      userID,
		VehicleID:   vehicleID,
		Type:        entity.VehicleExpenseType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
		Odometer:    req.Odometer,
		Provider:    req.Provider,
		Description: req.Description,
	}

	if req.Litres != nil {
		litres := decimal.NewFromFloat(*req.Litres)
		input.Litres = &litres
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVehicleExpenseResponse(output.Expense))
}

// ListExpenses handles GET /vehicles/:id/expenses requests.
func (c *VehicleController) ListExpenses(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id", "vehicle")
	if !ok {
		return
	}

	input := vehicle.GetVehicleCostsInput{
		VehicleID: vehicleID,
		UserID:    userID,
	}

	output, err := c.getCostsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleExpenseListResponse(output.Expenses))
}

// UpdateExpense handles PATCH /vehicles/:id/expenses/:expenseId requests.
func (c *VehicleController) UpdateExpense(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	expenseID, ok := parseIDParam(ctx, "expenseId", "vehicle expense")
	if !ok {
		return
	}

	var req dto.UpdateVehicleExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := vehicle.UpdateVehicleExpenseInput{
		ID:          expenseID,
		UserID:      userID,
		Odometer:    req.Odometer,
		Provider:    req.Provider,
		Description: req.Description,
	}

	if req.Type != nil {
		expenseType := entity.VehicleExpenseType(*req.Type)
		input.Type = &expenseType
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Litres != nil {
		litres := decimal.NewFromFloat(*req.Litres)
		input.Litres = &litres
	}
	if req.Date != nil {
		date, ok := parseDate(ctx, *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}

	output, err := c.updateExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleExpenseResponse(output.Expense))
}

// DeleteExpense handles DELETE /vehicles/:id/expenses/:expenseId requests.
func (c *VehicleController) DeleteExpense(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	expenseID, ok := parseIDParam(ctx, "expenseId", "vehicle expense")
	if !ok {
		return
	}

	input := vehicle.DeleteVehicleExpenseInput{
		ID:     expenseID,
		UserID: userID,
	}

	if err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetCosts handles GET /vehicles/:id/costs requests.
func (c *VehicleController) GetCosts(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id", "vehicle")
	if !ok {
		return
	}

	input := vehicle.GetVehicleCostsInput{
		VehicleID: vehicleID,
		UserID:    userID,
	}

	output, err := c.getCostsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleCostsResponse(vehicleID.String(), output))
}
