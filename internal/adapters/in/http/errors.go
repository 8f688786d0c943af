package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/invoice"
	"cargo/internal/core/domain/model/ticket"
	"cargo/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// renderError maps application errors onto HTTP status codes. Validation
// failures become 400, missing objects 404, uniqueness and state conflicts
// 409, authorization failures 401 or 403, everything else 500.
func renderError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, invoice.ErrInvoiceIsNotPending),
		errors.Is(err, booking.ErrBookingIsClosed),
		errors.Is(err, ticket.ErrTicketIsClosed):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
		var unauthorized *errs.UnauthorizedError
		if errors.As(err, &unauthorized) && unauthorized.Reason == errs.DenyNotAuthenticated {
			status = http.StatusUnauthorized
		}
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak internals on unexpected failures.
		message = "internal error"
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}
