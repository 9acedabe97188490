package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifetrack/backend/internal/application/usecase/activity"
	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
)

// ActivityController handles physical activity endpoints.
type ActivityController struct {
	createUseCase *activity.CreateActivityUseCase
	listUseCase   *activity.ListActivitiesUseCase
	updateUseCase *activity.UpdateActivityUseCase
	deleteUseCase *activity.DeleteActivityUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(
	createUseCase *activity.CreateActivityUseCase,
	listUseCase *activity.ListActivitiesUseCase,
	updateUseCase *activity.UpdateActivityUseCase,
	deleteUseCase *activity.DeleteActivityUseCase,
) *ActivityController {
	return &ActivityController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /activities requests.
func (c *ActivityController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
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

	input := activity.CreateActivityInput{
		UserID:           userID,
		Type:             entity.ActivityType(req.Type),
		DurationMinutes:  req.DurationMinutes,
		EnergyKilojoules: req.EnergyKilojoules,
		Steps:            req.Steps,
		Date:             date,
		Notes:            req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToActivityResponse(output.Activity))
}

// List handles GET /activities requests.
func (c *ActivityController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), activity.ListActivitiesInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityListResponse(output.Activities))
}

// Update handles PATCH /activities/:id requests.
func (c *ActivityController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	activityID, ok := parseIDParam(ctx, "id", "activity")
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := activity.UpdateActivityInput{
		ID:               activityID,
		UserID:           userID,
		DurationMinutes:  req.DurationMinutes,
		EnergyKilojoules: req.EnergyKilojoules,
		Steps:            req.Steps,
		Notes:            req.Notes,
	}

	if req.Type != nil {
		activityType := entity.ActivityType(*req.Type)
		input.Type = &activityType
	}
	if req.Date != nil {
		date, ok := parseDate(ctx, *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityResponse(output.Activity))
}

// Delete handles DELETE /activities/:id requests.
func (c *ActivityController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	activityID, ok := parseIDParam(ctx, "id", "activity")
	if !ok {
		return
	}

	input := activity.DeleteActivityInput{
		ID:     activityID,
		UserID: userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
