package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/smallbiznis/aurum/internal/billing/domain"
	bookingdomain "github.com/smallbiznis/aurum/internal/booking/domain"
	customerdomain "github.com/smallbiznis/aurum/internal/customer/domain"
	goldratedomain "github.com/smallbiznis/aurum/internal/goldrate/domain"
	inventorydomain "github.com/smallbiznis/aurum/internal/inventory/domain"
	layawaydomain "github.com/smallbiznis/aurum/internal/layaway/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrorHandlingMiddleware converts errors attached to the gin context into
// the JSON error envelope. Remote-call failures surface once; nothing is
// retried automatically.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	var vErr *ValidationErrors
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{Field: "request", Code: err.Error(), Message: err.Error()},
			},
		}
	}

	if isNotFoundError(err) {
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	}

	if isUnauthorizedError(err) {
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "staff identity required",
		}
	}

	if isConflictError(err) {
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, billingdomain.ErrInvalidCustomer),
		errors.Is(err, billingdomain.ErrInvalidSaleType),
		errors.Is(err, billingdomain.ErrNoItems),
		errors.Is(err, billingdomain.ErrInvalidWeight),
		errors.Is(err, billingdomain.ErrInvalidRate),
		errors.Is(err, billingdomain.ErrInvalidAmount),
		errors.Is(err, billingdomain.ErrInvalidID),
		errors.Is(err, customerdomain.ErrInvalidName),
		errors.Is(err, customerdomain.ErrInvalidPhone),
		errors.Is(err, customerdomain.ErrInvalidID),
		errors.Is(err, inventorydomain.ErrInvalidBarcode),
		errors.Is(err, inventorydomain.ErrInvalidName),
		errors.Is(err, inventorydomain.ErrInvalidWeight),
		errors.Is(err, inventorydomain.ErrInvalidID),
		errors.Is(err, goldratedomain.ErrInvalidRate),
		errors.Is(err, bookingdomain.ErrInvalidCustomer),
		errors.Is(err, bookingdomain.ErrInvalidDescription),
		errors.Is(err, bookingdomain.ErrInvalidAmount),
		errors.Is(err, bookingdomain.ErrInvalidStatus),
		errors.Is(err, bookingdomain.ErrInvalidID),
		errors.Is(err, layawaydomain.ErrInvalidCustomer),
		errors.Is(err, layawaydomain.ErrInvalidAmount),
		errors.Is(err, layawaydomain.ErrInvalidMethod),
		errors.Is(err, layawaydomain.ErrInvalidID):
		return true
	}
	return false
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, billingdomain.ErrNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, inventorydomain.ErrNotFound),
		errors.Is(err, goldratedomain.ErrNoRate),
		errors.Is(err, bookingdomain.ErrNotFound),
		errors.Is(err, layawaydomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	}
	return false
}

func isUnauthorizedError(err error) bool {
	switch {
	case errors.Is(err, billingdomain.ErrInvalidStaff),
		errors.Is(err, customerdomain.ErrInvalidStaff),
		errors.Is(err, inventorydomain.ErrInvalidStaff),
		errors.Is(err, goldratedomain.ErrInvalidStaff),
		errors.Is(err, bookingdomain.ErrInvalidStaff),
		errors.Is(err, layawaydomain.ErrInvalidStaff):
		return true
	}
	return false
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, billingdomain.ErrBillVoid),
		errors.Is(err, inventorydomain.ErrDuplicateBarcode),
		errors.Is(err, layawaydomain.ErrPlanClosed):
		return true
	}
	return false
}
