package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeInvalidEmail      ErrorCode = "INVALID_EMAIL"
	ErrCodeNotAuthenticated  ErrorCode = "NOT_AUTHENTICATED"
	ErrCodeNoCategory        ErrorCode = "NO_CATEGORY_SELECTED"
	ErrCodeUnknownCategory   ErrorCode = "UNKNOWN_CATEGORY"
	ErrCodePermissionDenied  ErrorCode = "PERMISSION_DENIED"
	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeNoActiveSession   ErrorCode = "NO_ACTIVE_SESSION"
	ErrCodeNoFileUploaded    ErrorCode = "NO_FILE_UPLOADED"
	ErrCodeNoFileSelected    ErrorCode = "NO_FILE_SELECTED"
	ErrCodeNoStatesSelected  ErrorCode = "NO_STATES_SELECTED"
	ErrCodeNoOriginState     ErrorCode = "NO_ORIGIN_STATE"
	ErrCodeOriginInTargets   ErrorCode = "ORIGIN_IN_TARGETS"
	ErrCodeUnknownState      ErrorCode = "UNKNOWN_STATE"
	ErrCodeMalformedRequest  ErrorCode = "MALFORMED_REQUEST"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrInvalidEmail     = NewUnauthorizedError("Invalid email address. Please try again.", ErrCodeInvalidEmail)
	ErrNotAuthenticated = NewUnauthorizedError("Authentication required", ErrCodeNotAuthenticated)
	ErrNoCategory       = NewValidationError("Please select a product category to continue.", ErrCodeNoCategory)
	ErrUnknownCategory  = NewValidationError("Invalid product category selected.", ErrCodeUnknownCategory)
	ErrPermissionDenied = NewForbiddenError("Access denied. Insufficient permissions.", ErrCodePermissionDenied)
	ErrUserNotFound     = NewNotFoundError("User not found", ErrCodeUserNotFound)
	ErrNoActiveSession  = NewValidationError("No active session", ErrCodeNoActiveSession)
	ErrNoFileUploaded   = NewValidationError("No file uploaded", ErrCodeNoFileUploaded)
	ErrNoFileSelected   = NewValidationError("No file selected", ErrCodeNoFileSelected)
	ErrNoStatesSelected = NewValidationError("No states selected", ErrCodeNoStatesSelected)
	ErrNoOriginState    = NewValidationError("No original state specified", ErrCodeNoOriginState)
	ErrOriginInTargets  = NewValidationError("Original state cannot be selected as a target state", ErrCodeOriginInTargets)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type ErrorResponse struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, ErrorResponse{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
