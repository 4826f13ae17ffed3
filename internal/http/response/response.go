package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meusistema/clientes/internal/platform/apierr"
)

type APIError struct {
	Message     string              `json:"message"`
	Code        string              `json:"code,omitempty"`
	Entity      string              `json:"entity,omitempty"`
	FieldErrors []apierr.FieldError `json:"fieldErrors,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError writes e and, for entity errors, the alert error headers.
func RespondAPIError(c *gin.Context, alerts Alerts, e *apierr.Error) {
	status := e.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	if e.Entity != "" {
		alerts.Failure(c, e.Entity, e.Code)
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message:     e.Error(),
			Code:        e.Code,
			Entity:      e.Entity,
			FieldErrors: e.Fields,
		},
	})
}

// RespondInternal hides err from the client. Callers log it first.
func RespondInternal(c *gin.Context) {
	RespondError(c, http.StatusInternalServerError, "internal", errors.New("internal server error"))
}

// RespondNotFound writes a bare 404.
func RespondNotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
