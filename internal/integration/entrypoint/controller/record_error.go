package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// handleRecordError maps record errors to HTTP responses. All record
// controllers share one error shape, so the mapping lives here once.
func handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(getStatusCodeForRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeActivityNotFound,
		domainerror.ErrCodeVehicleNotFound,
		domainerror.ErrCodeVehicleExpenseNotFound,
		domainerror.ErrCodeHomeNotFound,
		domainerror.ErrCodeHomeChildNotFound,
		domainerror.ErrCodeHolidayNotFound,
		domainerror.ErrCodeDailyExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseCategory,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidActivityType,
		domainerror.ErrCodeInvalidActivityDuration,
		domainerror.ErrCodeNegativeActivityValue,
		domainerror.ErrCodeInvalidFuelType,
		domainerror.ErrCodeMissingVehicleFields,
		domainerror.ErrCodeInvalidVehicleExpenseType,
		domainerror.ErrCodeInvalidVehicleExpenseValue,
		domainerror.ErrCodeInvalidHomeType,
		domainerror.ErrCodeInvalidOwnershipType,
		domainerror.ErrCodeMissingHomeFields,
		domainerror.ErrCodeInvalidHomeChildValue,
		domainerror.ErrCodeInvalidAlarmStatus,
		domainerror.ErrCodeInvalidBillType,
		domainerror.ErrCodeInvalidTravelMode,
		domainerror.ErrCodeInvalidHolidayCost,
		domainerror.ErrCodeInvalidHolidayDays,
		domainerror.ErrCodeMissingHolidayFields,
		domainerror.ErrCodeInvalidDailyExpenseType,
		domainerror.ErrCodeInvalidDayNumber:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// requireUserID extracts the authenticated user id, writing a 401 response
// when the auth middleware did not populate it.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a uuid path parameter, writing a 400 response when it
// is malformed.
func parseIDParam(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD request date, writing a 400 response when it
// is malformed.
func parseDate(ctx *gin.Context, value string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return date, true
}

// parseDatePtr parses an optional YYYY-MM-DD request date.
func parseDatePtr(ctx *gin.Context, value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	date, ok := parseDate(ctx, *value)
	if !ok {
		return nil, false
	}
	return &date, true
}
