package webserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/form"
)

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, envelope{Code: code, Message: message, Details: details})
}

// failErr maps domain errors to HTTP responses.
func failErr(c echo.Context, err error) error {
	var verr *form.ValidationError

	switch {
	case errors.As(err, &verr):
		var details interface{}
		if verr.Err != nil {
			details = verr.Err.Error()
		}
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", verr.Message, details)
	case errors.Is(err, domain.ErrProductNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", err.Error())
	case errors.Is(err, domain.ErrUnknownCategory), errors.Is(err, form.ErrUnknownField):
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error", err.Error())
	}
}
