package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apartmentdomain "github.com/praneeth8555/dairyadmin/internal/apartment/domain"
	authdomain "github.com/praneeth8555/dairyadmin/internal/auth/domain"
	billingdomain "github.com/praneeth8555/dairyadmin/internal/billing/domain"
	customerdomain "github.com/praneeth8555/dairyadmin/internal/customer/domain"
	orderdomain "github.com/praneeth8555/dairyadmin/internal/order/domain"
	productdomain "github.com/praneeth8555/dairyadmin/internal/product/domain"
	summarydomain "github.com/praneeth8555/dairyadmin/internal/summary/domain"
	"github.com/praneeth8555/dairyadmin/pkg/db"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("not_found")
	ErrConflict       = errors.New("conflict")
)

// ErrorHandlingMiddleware turns errors collected on the gin context
// into one JSON error body after the handler chain runs.
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
	return ErrInvalidRequest
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Code:    err.Error(),
			Message: "invalid request",
		}
	case isUnauthorizedError(err):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Code:    err.Error(),
			Message: "conflict",
		}
	case errors.Is(err, billingdomain.ErrBillInFlight):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "too_many_requests",
			Code:    "bill_in_flight",
			Message: "an aggregation for this customer and month is already running",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, apartmentdomain.ErrInvalidName),
		errors.Is(err, apartmentdomain.ErrInvalidID),
		errors.Is(err, customerdomain.ErrInvalidName),
		errors.Is(err, customerdomain.ErrInvalidApartment),
		errors.Is(err, customerdomain.ErrInvalidID),
		errors.Is(err, customerdomain.ErrEmptyPriorities),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidPrice),
		errors.Is(err, productdomain.ErrInvalidDate),
		errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, orderdomain.ErrInvalidID),
		errors.Is(err, orderdomain.ErrInvalidDate),
		errors.Is(err, orderdomain.ErrInvalidRange),
		errors.Is(err, orderdomain.ErrInvalidQuantity),
		errors.Is(err, orderdomain.ErrInvalidDayType),
		errors.Is(err, orderdomain.ErrInvalidMonth),
		errors.Is(err, billingdomain.ErrInvalidID),
		errors.Is(err, billingdomain.ErrInvalidMonth),
		errors.Is(err, summarydomain.ErrInvalidID),
		errors.Is(err, summarydomain.ErrInvalidDate),
		errors.Is(err, authdomain.ErrInvalidUsername),
		errors.Is(err, authdomain.ErrInvalidPassword):
		return true
	default:
		return false
	}
}

func isUnauthorizedError(err error) bool {
	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidToken):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, apartmentdomain.ErrNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, billingdomain.ErrNotFound),
		errors.Is(err, summarydomain.ErrNotFound),
		errors.Is(err, orderdomain.ErrCustomerNotFound),
		errors.Is(err, orderdomain.ErrProductNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, orderdomain.ErrDuplicateProduct),
		errors.Is(err, authdomain.ErrUsernameTaken):
		return true
	default:
		return db.IsDuplicateKeyErr(err)
	}
}

// classifyErrorForLog buckets request errors for log fields.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	status, payload := mapError(err)
	switch {
	case status >= http.StatusInternalServerError:
		return "internal", payload.Type
	case status == http.StatusUnauthorized:
		return "auth", payload.Type
	default:
		return "client", strings.TrimSpace(payload.Code)
	}
}
