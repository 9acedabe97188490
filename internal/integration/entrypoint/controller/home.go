package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/usecase/home"
	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
)

// HomeController handles home endpoints and the four child collections
// hanging off a home: insurances, smoke alarms, repairs and utility bills.
type HomeController struct {
	createUseCase *home.CreateHomeUseCase
	listUseCase   *home.ListHomesUseCase
	updateUseCase *home.UpdateHomeUseCase
	deleteUseCase *home.DeleteHomeUseCase

	addInsuranceUseCase    *home.AddInsuranceUseCase
	listInsurancesUseCase  *home.ListInsurancesUseCase
	updateInsuranceUseCase *home.UpdateInsuranceUseCase
	deleteInsuranceUseCase *home.DeleteInsuranceUseCase

	addSmokeAlarmUseCase    *home.AddSmokeAlarmUseCase
	listSmokeAlarmsUseCase  *home.ListSmokeAlarmsUseCase
	updateSmokeAlarmUseCase *home.UpdateSmokeAlarmUseCase
	deleteSmokeAlarmUseCase *home.DeleteSmokeAlarmUseCase

	addRepairUseCase    *home.AddRepairUseCase
	listRepairsUseCase  *home.ListRepairsUseCase
	updateRepairUseCase *home.UpdateRepairUseCase
	deleteRepairUseCase *home.DeleteRepairUseCase

	addUtilityBillUseCase    *home.AddUtilityBillUseCase
	listUtilityBillsUseCase  *home.ListUtilityBillsUseCase
	updateUtilityBillUseCase *home.UpdateUtilityBillUseCase
	deleteUtilityBillUseCase *home.DeleteUtilityBillUseCase
}

// HomeControllerUseCases groups the use cases wired into the home controller.
type HomeControllerUseCases struct {
	Create *home.CreateHomeUseCase
	List   *home.ListHomesUseCase
	Update *home.UpdateHomeUseCase
	Delete *home.DeleteHomeUseCase

	AddInsurance    *home.AddInsuranceUseCase
	ListInsurances  *home.ListInsurancesUseCase
	UpdateInsurance *home.UpdateInsuranceUseCase
	DeleteInsurance *home.DeleteInsuranceUseCase

	AddSmokeAlarm    *home.AddSmokeAlarmUseCase
	ListSmokeAlarms  *home.ListSmokeAlarmsUseCase
	UpdateSmokeAlarm *home.UpdateSmokeAlarmUseCase
	DeleteSmokeAlarm *home.DeleteSmokeAlarmUseCase

	AddRepair    *home.AddRepairUseCase
	ListRepairs  *home.ListRepairsUseCase
	UpdateRepair *home.UpdateRepairUseCase
	DeleteRepair *home.DeleteRepairUseCase

	AddUtilityBill    *home.AddUtilityBillUseCase
	ListUtilityBills  *home.ListUtilityBillsUseCase
	UpdateUtilityBill *home.UpdateUtilityBillUseCase
	DeleteUtilityBill *home.DeleteUtilityBillUseCase
}

// NewHomeController creates a new home controller instance.
func NewHomeController(useCases HomeControllerUseCases) *HomeController {
	return &HomeController{
		createUseCase:            useCases.Create,
		listUseCase:              useCases.List,
		updateUseCase:            useCases.Update,
		deleteUseCase:            useCases.Delete,
		addInsuranceUseCase:      useCases.AddInsurance,
		listInsurancesUseCase:    useCases.ListInsurances,
		updateInsuranceUseCase:   useCases.UpdateInsurance,
		deleteInsuranceUseCase:   useCases.DeleteInsurance,
		addSmokeAlarmUseCase:     useCases.AddSmokeAlarm,
		listSmokeAlarmsUseCase:   useCases.ListSmokeAlarms,
		updateSmokeAlarmUseCase:  useCases.UpdateSmokeAlarm,
		deleteSmokeAlarmUseCase:  useCases.DeleteSmokeAlarm,
		addRepairUseCase:         useCases.AddRepair,
		listRepairsUseCase:       useCases.ListRepairs,
		updateRepairUseCase:      useCases.UpdateRepair,
		deleteRepairUseCase:      useCases.DeleteRepair,
		addUtilityBillUseCase:    useCases.AddUtilityBill,
		listUtilityBillsUseCase:  useCases.ListUtilityBills,
		updateUtilityBillUseCase: useCases.UpdateUtilityBill,
		deleteUtilityBillUseCase: useCases.DeleteUtilityBill,
	}
}

// Create handles POST /homes requests.
func (c *HomeController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateHomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := home.CreateHomeInput{
		UserID:    userID,
		Name:      req.Name,
		Type:      entity.HomeType(req.Type),
		Ownership: entity.OwnershipType(req.Ownership),
		Address:   req.Address,
	}
	if req.MonthlyPayment != nil {
		payment := decimal.NewFromFloat(*req.MonthlyPayment)
		input.MonthlyPayment = &payment
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHomeResponse(output.Home))
}

// List handles GET /homes requests.
func (c *HomeController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), home.ListHomesInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHomeListResponse(output.Homes))
}

// Update handles PATCH /homes/:id requests.
func (c *HomeController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	var req dto.UpdateHomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := home.UpdateHomeInput{
		ID:      homeID,
		UserID:  userID,
		Name:    req.Name,
		Address: req.Address,
	}

	if req.Type != nil {
		homeType := entity.HomeType(*req.Type)
		input.Type = &homeType
	}
	if req.Ownership != nil {
		ownership := entity.OwnershipType(*req.Ownership)
		input.Ownership = &ownership
	}
	if req.MonthlyPayment != nil {
		payment := decimal.NewFromFloat(*req.MonthlyPayment)
		input.MonthlyPayment = &payment
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHomeResponse(output.Home))
}

// Delete handles DELETE /homes/:id requests. Deleting a home also removes
// its four child collections.
func (c *HomeController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	input := home.DeleteHomeInput{
		ID:     homeID,
		UserID: userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddInsurance handles POST /homes/:id/insurances requests.
func (c *HomeController) AddInsurance(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	var req dto.AddHomeInsuranceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	renewalDate, ok := parseDate(ctx, req.RenewalDate)
	if !ok {
		return
	}

	input := home.AddInsuranceInput{
		UserID:       userID,
		HomeID:       homeID,
		Provider:     req.Provider,
		PolicyNumber: req.PolicyNumber,
		Premium:      decimal.NewFromFloat(req.Premium),
		RenewalDate:  renewalDate,
	}

	output, err := c.addInsuranceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHomeInsuranceResponse(output.Insurance))
}

// ListInsurances handles GET /homes/:id/insurances requests.
func (c *HomeController) ListInsurances(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	input := home.ListInsurancesInput{
		UserID: userID,
		HomeID: homeID,
	}

	output, err := c.listInsurancesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHomeInsuranceListResponse(output.Insurances))
}

// UpdateInsurance handles PATCH /homes/:id/insurances/:childId requests.
func (c *HomeController) UpdateInsurance(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}
	insuranceID, ok := parseIDParam(ctx, "childId", "insurance")
	if !ok {
		return
	}

	var req dto.UpdateHomeInsuranceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := home.UpdateInsuranceInput{
		ID:           insuranceID,
		HomeID:       homeID,
		UserID:       userID,
		Provider:     req.Provider,
		PolicyNumber: req.PolicyNumber,
	}

	if req.Premium != nil {
		premium := decimal.NewFromFloat(*req.Premium)
		input.Premium = &premium
	}
	if req.RenewalDate != nil {
		renewalDate, ok := parseDate(ctx, *req.RenewalDate)
		if !ok {
			return
		}
		input.RenewalDate = &renewalDate
	}

	output, err := c.updateInsuranceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHomeInsuranceResponse(output.Insurance))
}

// DeleteInsurance handles DELETE /homes/:id/insurances/:childId requests.
func (c *HomeController) DeleteInsurance(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	insuranceID, ok := parseIDParam(ctx, "childId", "insurance")
	if !ok {
		return
	}

	input := home.DeleteInsuranceInput{
		ID:     insuranceID,
		UserID: userID,
	}

	if err := c.deleteInsuranceUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddSmokeAlarm handles POST /homes/:id/smoke-alarms requests.
func (c *HomeController) AddSmokeAlarm(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	var req dto.AddSmokeAlarmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	lastTested, ok := parseDatePtr(ctx, req.LastTested)
	if !ok {
		return
	}
	batteryReplaced, ok := parseDatePtr(ctx, req.BatteryReplaced)
	if !ok {
		return
	}

	input := home.AddSmokeAlarmInput{
		UserID:          userID,
		HomeID:          homeID,
		Location:        req.Location,
		Status:          entity.SmokeAlarmStatus(req.Status),
		LastTested:      lastTested,
		BatteryReplaced: batteryReplaced,
	}

	output, err := c.addSmokeAlarmUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSmokeAlarmResponse(output.Alarm))
}

// ListSmokeAlarms handles GET /homes/:id/smoke-alarms requests.
func (c *HomeController) ListSmokeAlarms(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	input := home.ListSmokeAlarmsInput{
		UserID: userID,
		HomeID: homeID,
	}

	output, err := c.listSmokeAlarmsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSmokeAlarmListResponse(output.Alarms))
}

// UpdateSmokeAlarm handles PATCH /homes/:id/smoke-alarms/:childId requests.
func (c *HomeController) UpdateSmokeAlarm(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}
	alarmID, ok := parseIDParam(ctx, "childId", "smoke alarm")
	if !ok {
		return
	}

	var req dto.UpdateSmokeAlarmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := home.UpdateSmokeAlarmInput{
		ID:       alarmID,
		HomeID:   homeID,
		UserID:   userID,
		Location: req.Location,
	}

	if req.Status != nil {
		status := entity.SmokeAlarmStatus(*req.Status)
		input.Status = &status
	}
	lastTested, ok := parseDatePtr(ctx, req.LastTested)
	if !ok {
		return
	}
	input.LastTested = lastTested

	batteryReplaced, ok := parseDatePtr(ctx, req.BatteryReplaced)
	if !ok {
		return
	}
	input.BatteryReplaced = batteryReplaced

	output, err := c.updateSmokeAlarmUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSmokeAlarmResponse(output.Alarm))
}

// DeleteSmokeAlarm handles DELETE /homes/:id/smoke-alarms/:childId requests.
func (c *HomeController) DeleteSmokeAlarm(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	alarmID, ok := parseIDParam(ctx, "childId", "smoke alarm")
	if !ok {
		return
	}

	input := home.DeleteSmokeAlarmInput{
		ID:     alarmID,
		UserID: userID,
	}

	if err := c.deleteSmokeAlarmUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddRepair handles POST /homes/:id/repairs requests.
func (c *HomeController) AddRepair(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	var req dto.AddRepairRequest
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

	input := home.AddRepairInput{
		UserID:      userID,
		HomeID:      homeID,
		Description: req.Description,
		Cost:        decimal.NewFromFloat(req.Cost),
		Date:        date,
		Contractor:  req.Contractor,
	}

	output, err := c.addRepairUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRepairResponse(output.Repair))
}

// ListRepairs handles GET /homes/:id/repairs requests.
func (c *HomeController) ListRepairs(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	input := home.ListRepairsInput{
		UserID: userID,
		HomeID: homeID,
	}

	output, err := c.listRepairsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRepairListResponse(output.Repairs))
}

// UpdateRepair handles PATCH /homes/:id/repairs/:childId requests.
func (c *HomeController) UpdateRepair(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}
	repairID, ok := parseIDParam(ctx, "childId", "repair")
	if !ok {
		return
	}

	var req dto.UpdateRepairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := home.UpdateRepairInput{
		ID:          repairID,
		HomeID:      homeID,
		UserID:      userID,
		Description: req.Description,
		Contractor:  req.Contractor,
	}

	if req.Cost != nil {
		cost := decimal.NewFromFloat(*req.Cost)
		input.Cost = &cost
	}
	if req.Date != nil {
		date, ok := parseDate(ctx, *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}

	output, err := c.updateRepairUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRepairResponse(output.Repair))
}

// DeleteRepair handles DELETE /homes/:id/repairs/:childId requests.
func (c *HomeController) DeleteRepair(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	repairID, ok := parseIDParam(ctx, "childId", "repair")
	if !ok {
		return
	}

	input := home.DeleteRepairInput{
		ID:     repairID,
		UserID: userID,
	}

	if err := c.deleteRepairUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddUtilityBill handles POST /homes/:id/utility-bills requests.
func (c *HomeController) AddUtilityBill(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	var req dto.AddUtilityBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	dueDate, ok := parseDate(ctx, req.DueDate)
	if !ok {
		return
	}

	input := home.AddUtilityBillInput{
		UserID:  userID,
		HomeID:  homeID,
		Type:    entity.UtilityBillType(req.Type),
		Amount:  decimal.NewFromFloat(req.Amount),
		DueDate: dueDate,
		Paid:    req.Paid,
	}

	output, err := c.addUtilityBillUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUtilityBillResponse(output.Bill))
}

// ListUtilityBills handles GET /homes/:id/utility-bills requests.
func (c *HomeController) ListUtilityBills(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}

	input := home.ListUtilityBillsInput{
		UserID: userID,
		HomeID: homeID,
	}

	output, err := c.listUtilityBillsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUtilityBillListResponse(output.Bills))
}

// UpdateUtilityBill handles PATCH /homes/:id/utility-bills/:childId requests.
func (c *HomeController) UpdateUtilityBill(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	homeID, ok := parseIDParam(ctx, "id", "home")
	if !ok {
		return
	}
	billID, ok := parseIDParam(ctx, "childId", "utility bill")
	if !ok {
		return
	}

	var req dto.UpdateUtilityBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := home.UpdateUtilityBillInput{
		ID:     billID,
		HomeID: homeID,
		UserID: userID,
		Paid:   req.Paid,
	}

	if req.Type != nil {
		billType := entity.UtilityBillType(*req.Type)
		input.Type = &billType
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.DueDate != nil {
		dueDate, ok := parseDate(ctx, *req.DueDate)
		if !ok {
			return
		}
		input.DueDate = &dueDate
	}

	output, err := c.updateUtilityBillUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUtilityBillResponse(output.Bill))
}

// DeleteUtilityBill handles DELETE /homes/:id/utility-bills/:childId requests.
func (c *HomeController) DeleteUtilityBill(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	billID, ok := parseIDParam(ctx, "childId", "utility bill")
	if !ok {
		return
	}

	input := home.DeleteUtilityBillInput{
		ID:     billID,
		UserID: userID,
	}

	if err := c.deleteUtilityBillUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
