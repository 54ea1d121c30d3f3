package errors

import "fmt"

// Application error types organized by category for better error handling

type ErrorType string

// Domain/Business Logic Errors - errors related to flight data and validation
const (
	ValidationError    ErrorType = "VALIDATION_ERROR"
	NotFoundError      ErrorType = "NOT_FOUND_ERROR"
	AlreadyExistsError ErrorType = "ALREADY_EXISTS_ERROR"
	InvalidFlightError ErrorType = "INVALID_FLIGHT_ERROR"
	AirportNotFound    ErrorType = "AIRPORT_NOT_FOUND"
	NoEventsFound      ErrorType = "NO_EVENTS_FOUND"
)

// Calendar Access Errors - errors related to event source authorization
const (
	CalendarAccessDenied     ErrorType = "CALENDAR_ACCESS_DENIED"
	CalendarAccessRestricted ErrorType = "CALENDAR_ACCESS_RESTRICTED"
)

// Infrastructure Errors - errors related to external systems and services
const (
	DatabaseError              ErrorType = "DATABASE_ERROR"
	ExternalAPIError           ErrorType = "EXTERNAL_API_ERROR"
	LocationUnavailable        ErrorType = "LOCATION_UNAVAILABLE"
	TransportCalculationFailed ErrorType = "TRANSPORT_CALCULATION_FAILED"
	NoDataSourceAvailable      ErrorType = "NO_DATA_SOURCE_AVAILABLE"
)

// System/Configuration Errors - errors related to system setup and configuration
const (
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewAlreadyExistsError(message string) *AppError {
	return New(AlreadyExistsError, message)
}

func NewInvalidFlightError(message string) *AppError {
	return New(InvalidFlightError, message)
}

func NewAirportNotFoundError(code string) *AppError {
	return New(AirportNotFound, fmt.Sprintf("airport %q is not in the directory", code))
}

func NewNoEventsFoundError(message string) *AppError {
	return New(NoEventsFound, message)
}

// Calendar Access Error Constructors
func NewCalendarAccessDeniedError(message string) *AppError {
	return New(CalendarAccessDenied, message)
}

func NewCalendarAccessRestrictedError(message string) *AppError {
	return New(CalendarAccessRestricted, message)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

func NewLocationUnavailableError(message string) *AppError {
	return New(LocationUnavailable, message)
}

func NewTransportCalculationError(message string, cause error) *AppError {
	return Wrap(TransportCalculationFailed, message, cause)
}

func NewNoDataSourceError(message string, cause error) *AppError {
	return Wrap(NoDataSourceAvailable, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}
