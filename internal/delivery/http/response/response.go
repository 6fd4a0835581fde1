package response

import (
	"net/http"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// problemTypeBase prefixes the classification URI of every problem document.
const problemTypeBase = "https://storefront.example.com/problems/"

// Response unified API response structure for successful requests.
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`    // HTTP status code
	Message string `json:"message"` // User-friendly message
	Data    any    `json:"data,omitempty"`
}

// Problem is the RFC 7807 document returned on every failure.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes a problem document. errorCode becomes the tail of the
// classification URI, e.g. "CART_NOT_FOUND" -> .../problems/cart-not-found.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Problem{
		Type:     problemType(errorCode),
		Title:    message,
		Status:   statusCode,
		Detail:   details,
		Instance: c.Request().URL.Path,
	})
}

func problemType(errorCode string) string {
	if errorCode == "" {
		return "about:blank"
	}

	return problemTypeBase + strings.ReplaceAll(strings.ToLower(errorCode), "_", "-")
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError maps an application error onto a problem document,
// falling back to a generic 500 for anything that is not an AppError.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return InternalServerError(c, "INTERNAL_ERROR", "Internal server error")
}
