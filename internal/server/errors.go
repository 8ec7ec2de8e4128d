package server

import (
	"errors"
	"net/http"
	"strings"

	assessmentdomain "github.com/eduverse/eduverse/internal/assessment/domain"
	attendancedomain "github.com/eduverse/eduverse/internal/attendance/domain"
	batchdomain "github.com/eduverse/eduverse/internal/batch/domain"
	institutiondomain "github.com/eduverse/eduverse/internal/institution/domain"
	invoicedomain "github.com/eduverse/eduverse/internal/invoice/domain"
	studentdomain "github.com/eduverse/eduverse/internal/student/domain"
	userdomain "github.com/eduverse/eduverse/internal/user/domain"
	"github.com/gin-gonic/gin"
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

var (
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

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

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, invoicedomain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "service_unavailable",
			Message: "service unavailable",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func classifyErrorForLog(err error) (string, string) {
	status, payload := mapError(err)
	if status >= http.StatusInternalServerError {
		return "server_error", payload.Type
	}
	return "client_error", payload.Type
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isInstitutionValidationError(err),
		isUserValidationError(err),
		isBatchValidationError(err),
		isStudentValidationError(err),
		isAttendanceValidationError(err),
		isAssessmentValidationError(err),
		isInvoiceValidationError(err):
		return true
	default:
		return false
	}
}

func isInstitutionValidationError(err error) bool {
	return errors.Is(err, institutiondomain.ErrInvalidName) ||
		errors.Is(err, institutiondomain.ErrInvalidPlan)
}

func isUserValidationError(err error) bool {
	switch {
	case errors.Is(err, userdomain.ErrInvalidInstitution),
		errors.Is(err, userdomain.ErrInvalidRole),
		errors.Is(err, userdomain.ErrInvalidName),
		errors.Is(err, userdomain.ErrInvalidEmail),
		errors.Is(err, userdomain.ErrInvalidStudent):
		return true
	default:
		return false
	}
}

func isBatchValidationError(err error) bool {
	return errors.Is(err, batchdomain.ErrInvalidInstitution) ||
		errors.Is(err, batchdomain.ErrInvalidName)
}

func isStudentValidationError(err error) bool {
	switch {
	case errors.Is(err, studentdomain.ErrInvalidInstitution),
		errors.Is(err, studentdomain.ErrInvalidUser),
		errors.Is(err, studentdomain.ErrInvalidBatch):
		return true
	default:
		return false
	}
}

func isAttendanceValidationError(err error) bool {
	switch {
	case errors.Is(err, attendancedomain.ErrInvalidInstitution),
		errors.Is(err, attendancedomain.ErrInvalidStudent),
		errors.Is(err, attendancedomain.ErrInvalidBatch),
		errors.Is(err, attendancedomain.ErrInvalidDate),
		errors.Is(err, attendancedomain.ErrInvalidStatus),
		errors.Is(err, attendancedomain.ErrInvalidMode):
		return true
	default:
		return false
	}
}

func isAssessmentValidationError(err error) bool {
	switch {
	case errors.Is(err, assessmentdomain.ErrInvalidInstitution),
		errors.Is(err, assessmentdomain.ErrInvalidText),
		errors.Is(err, assessmentdomain.ErrInvalidOptions),
		errors.Is(err, assessmentdomain.ErrInvalidCorrectIndex),
		errors.Is(err, assessmentdomain.ErrInvalidDifficulty),
		errors.Is(err, assessmentdomain.ErrInvalidTitle),
		errors.Is(err, assessmentdomain.ErrInvalidQuestions),
		errors.Is(err, assessmentdomain.ErrInvalidBatch),
		errors.Is(err, assessmentdomain.ErrInvalidTest),
		errors.Is(err, assessmentdomain.ErrInvalidStudent),
		errors.Is(err, assessmentdomain.ErrInvalidAnswers):
		return true
	default:
		return false
	}
}

func isInvoiceValidationError(err error) bool {
	switch {
	case errors.Is(err, invoicedomain.ErrInvalidInstitution),
		errors.Is(err, invoicedomain.ErrInvalidStudent),
		errors.Is(err, invoicedomain.ErrInvalidInvoice),
		errors.Is(err, invoicedomain.ErrEmptyItems),
		errors.Is(err, invoicedomain.ErrNegativeItemAmount),
		errors.Is(err, invoicedomain.ErrInvalidGSTPercent),
		errors.Is(err, invoicedomain.ErrInvalidAmount),
		errors.Is(err, invoicedomain.ErrInvalidMethod),
		errors.Is(err, invoicedomain.ErrInvalidProvider):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, userdomain.ErrEmailExists),
		errors.Is(err, institutiondomain.ErrSubdomainTaken):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, institutiondomain.ErrNotFound),
		errors.Is(err, userdomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}
