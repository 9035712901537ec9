package errors

import (
	"log"
	"net/http"

	"github.com/creatorbridge/api/pkg/models"
	"github.com/labstack/echo/v4"
)

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// DatabaseError returns a generic database error without exposing internal details
func DatabaseError(c echo.Context, err error) error {
	log.Printf("[DATABASE ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "database_error",
		Message: "A database error occurred. Please try again later.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UpstreamError returns a generic error for failures of external services
// (storage, email, analysis). The original error is only logged.
func UpstreamError(c echo.Context, service string, err error) error {
	log.Printf("[UPSTREAM ERROR] Service: %s, Path: %s, Error: %v", service, c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "upstream_error",
		Message: "An external service failed. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// ForbiddenError returns a generic forbidden error
func ForbiddenError(c echo.Context) error {
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "forbidden",
		Message: "You do not have permission to access this resource.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ConflictError returns a conflict error. The message is safe to expose
// (e.g. "lead already converted").
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message,
	})
}

// BadRequest returns a 400 with a caller-supplied safe message.
func BadRequest(c echo.Context, errCode, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
