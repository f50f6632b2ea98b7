package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kebba/gomove/internal/pkg/errs"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// kindStatus maps error kinds to HTTP status codes.
var kindStatus = map[errs.Kind]int{
	errs.KindValidation:             http.StatusBadRequest,
	errs.KindUnauthorized:           http.StatusForbidden,
	errs.KindNotFound:               http.StatusNotFound,
	errs.KindInvalidTransition:      http.StatusConflict,
	errs.KindWrongBookingState:      http.StatusConflict,
	errs.KindAlreadyTerminal:        http.StatusConflict,
	errs.KindFulfillerNotApproved:   http.StatusConflict,
	errs.KindFulfillerBusy:          http.StatusConflict,
	errs.KindBlockedByActiveBooking: http.StatusConflict,
	errs.KindDuplicateReview:        http.StatusConflict,
	errs.KindPartialFailure:         http.StatusInternalServerError,
	errs.KindUnavailable:            http.StatusServiceUnavailable,
}

// DomainErrorResponse maps a classified error to its HTTP status and renders
// the machine-readable kind plus the human-readable message.
func DomainErrorResponse(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		return InternalServerErrorResponse(c, "Internal server error")
	}
	return c.JSON(status, ErrorResponse{
		Success: false,
		Error:   err.Error(),
		Code:    string(kind),
	})
}
