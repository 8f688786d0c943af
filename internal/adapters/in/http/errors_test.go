package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/invoice"
	"cargo/internal/core/domain/model/ticket"
	"cargo/internal/pkg/errs"
)

func TestRenderError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"value required", errs.NewValueIsRequiredError("handle"), http.StatusBadRequest},
		{"value invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"value out of range", errs.NewValueIsOutOfRangeError("weight", -1.0, 0.0, 1000.0), http.StatusBadRequest},
		{"object not found", errs.NewObjectNotFoundError("bookingID", nil), http.StatusNotFound},
		{"conflict", errs.NewConflictError("handle"), http.StatusConflict},
		{"invoice not pending", invoice.ErrInvoiceIsNotPending, http.StatusConflict},
		{"booking closed", booking.ErrBookingIsClosed, http.StatusConflict},
		{"ticket closed", ticket.ErrTicketIsClosed, http.StatusConflict},
		{"invalid credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not authenticated", errs.NewUnauthorizedError(errs.DenyNotAuthenticated, "view bookings"), http.StatusUnauthorized},
		{"role mismatch", errs.NewUnauthorizedError(errs.DenyRoleMismatch, "assign employee"), http.StatusForbidden},
		{"not owner", errs.NewUnauthorizedError(errs.DenyNotOwner, "pay invoice"), http.StatusForbidden},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, renderError(c, tt.err))
			assert.Equal(t, tt.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRenderError_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, renderError(c, errors.New("dial tcp 10.0.0.5:5432: timeout")))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body.Message)
	assert.NotContains(t, body.Message, "10.0.0.5")
}
