package error

import "errors"

// Record domain errors, shared across the five record families. The original
// stores treated a missing id as a silent no-op; here NotFound is explicit.
var (
	// ErrRecordNotFound is returned when an update or delete references an id
	// absent from the owner's records.
	ErrRecordNotFound = errors.New("record not found")

	// ErrParentNotFound is returned when a child record references a parent
	// that does not exist or is not owned by the caller.
	ErrParentNotFound = errors.New("parent record not found")

	// ErrInvalidAmount is returned when a monetary amount is not a positive value.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidDuration is returned when a duration is not a positive value.
	ErrInvalidDuration = errors.New("duration must be greater than zero")

	// ErrNegativeValue is returned when a gauge field (steps, energy, cost) is negative.
	ErrNegativeValue = errors.New("value must not be negative")

	// ErrInvalidEnum is returned when a closed-enum field carries an unknown value.
	ErrInvalidEnum = errors.New("invalid enumeration value")

	// ErrMissingFields is returned when required fields are absent.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidDayNumber is returned when a holiday daily expense references a
	// day outside the holiday's duration.
	ErrInvalidDayNumber = errors.New("day number outside holiday duration")

	// ErrStorageFailure is returned when the backing store cannot be read or written.
	ErrStorageFailure = errors.New("storage failure")
)

// RecordErrorCode defines error codes for record errors.
// Format: <DOM>-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Expense errors
	ErrCodeExpenseNotFound        RecordErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount   RecordErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseCategory RecordErrorCode = "EXP-010003"
	ErrCodeMissingExpenseFields   RecordErrorCode = "EXP-010004"

	// Activity errors
	ErrCodeActivityNotFound        RecordErrorCode = "ACT-010001"
	ErrCodeInvalidActivityType     RecordErrorCode = "ACT-010002"
	ErrCodeInvalidActivityDuration RecordErrorCode = "ACT-010003"
	ErrCodeNegativeActivityValue   RecordErrorCode = "ACT-010004"

	// Vehicle errors
	ErrCodeVehicleNotFound            RecordErrorCode = "VEH-010001"
	ErrCodeInvalidFuelType            RecordErrorCode = "VEH-010002"
	ErrCodeMissingVehicleFields       RecordErrorCode = "VEH-010003"
	ErrCodeVehicleExpenseNotFound     RecordErrorCode = "VEH-020001"
	ErrCodeInvalidVehicleExpenseType  RecordErrorCode = "VEH-020002"
	ErrCodeInvalidVehicleExpenseValue RecordErrorCode = "VEH-020003"

	// Home errors
	ErrCodeHomeNotFound          RecordErrorCode = "HOM-010001"
	ErrCodeInvalidHomeType       RecordErrorCode = "HOM-010002"
	ErrCodeInvalidOwnershipType  RecordErrorCode = "HOM-010003"
	ErrCodeMissingHomeFields     RecordErrorCode = "HOM-010004"
	ErrCodeHomeChildNotFound     RecordErrorCode = "HOM-020001"
	ErrCodeInvalidHomeChildValue RecordErrorCode = "HOM-020002"
	ErrCodeInvalidAlarmStatus    RecordErrorCode = "HOM-020003"
	ErrCodeInvalidBillType       RecordErrorCode = "HOM-020004"

	// Holiday errors
	ErrCodeHolidayNotFound         RecordErrorCode = "HOL-010001"
	ErrCodeInvalidTravelMode       RecordErrorCode = "HOL-010002"
	ErrCodeInvalidHolidayCost      RecordErrorCode = "HOL-010003"
	ErrCodeInvalidHolidayDays      RecordErrorCode = "HOL-010004"
	ErrCodeMissingHolidayFields    RecordErrorCode = "HOL-010005"
	ErrCodeDailyExpenseNotFound    RecordErrorCode = "HOL-020001"
	ErrCodeInvalidDailyExpenseType RecordErrorCode = "HOL-020002"
	ErrCodeInvalidDayNumber        RecordErrorCode = "HOL-020003"

	// Storage errors
	ErrCodeStorageFailure RecordErrorCode = "STO-010001"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
