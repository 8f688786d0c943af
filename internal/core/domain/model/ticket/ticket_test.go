package ticket_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ticket"
	"cargo/internal/pkg/errs"
)

func Test_NewTicket_creates_open_ticket(t *testing.T) {
	id := kernel.NewUUID()
	accountID := kernel.NewUUID()
	openedAt := time.Now()

	tk, err := ticket.NewTicket(id, accountID, "Damaged parcel", "The box arrived crushed.", openedAt)

	require.NoError(t, err)
	assert.True(t, tk.ID().IsEqual(id))
	assert.True(t, tk.AccountID().IsEqual(accountID))
	assert.Equal(t, "Damaged parcel", tk.Subject())
	assert.Equal(t, "The box arrived crushed.", tk.Body())
	assert.Equal(t, ticket.StatusOpen, tk.Status())
	assert.Equal(t, openedAt, tk.OpenedAt())
	assert.Nil(t, tk.ClosedAt())
}

func Test_NewTicket_rejects_invalid_params(t *testing.T) {
	id := kernel.NewUUID()
	accountID := kernel.NewUUID()
	openedAt := time.Now()

	tests := map[string]struct {
		id        kernel.UUID
		accountID kernel.UUID
		subject   string
		body      string
		openedAt  time.Time
	}{
		"empty_id":         {kernel.UUID{}, accountID, "s", "b", openedAt},
		"empty_account_id": {id, kernel.UUID{}, "s", "b", openedAt},
		"blank_subject":    {id, accountID, "   ", "b", openedAt},
		"blank_body":       {id, accountID, "s", "", openedAt},
		"zero_opened_at":   {id, accountID, "s", "b", time.Time{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ticket.NewTicket(tc.id, tc.accountID, tc.subject, tc.body, tc.openedAt)
			assert.Error(t, err)
		})
	}
}

func Test_Close_transitions_open_to_closed(t *testing.T) {
	tk, err := ticket.NewTicket(kernel.NewUUID(), kernel.NewUUID(), "s", "b", time.Now())
	require.NoError(t, err)

	closedAt := time.Now()
	require.NoError(t, tk.Close(closedAt))

	assert.Equal(t, ticket.StatusClosed, tk.Status())
	require.NotNil(t, tk.ClosedAt())
	assert.Equal(t, closedAt, *tk.ClosedAt())
}

func Test_Close_rejects_closed_ticket(t *testing.T) {
	tk, err := ticket.NewTicket(kernel.NewUUID(), kernel.NewUUID(), "s", "b", time.Now())
	require.NoError(t, err)
	require.NoError(t, tk.Close(time.Now()))

	assert.ErrorIs(t, tk.Close(time.Now()), ticket.ErrTicketIsClosed)
}

func Test_RestoreTicket_rejects_inconsistent_closed_timestamp(t *testing.T) {
	id := kernel.NewUUID()
	accountID := kernel.NewUUID()
	openedAt := time.Now()
	closedAt := time.Now()

	t.Run("closed_without_timestamp", func(t *testing.T) {
		_, err := ticket.RestoreTicket(id, accountID, "s", "b", ticket.StatusClosed, openedAt, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("open_with_timestamp", func(t *testing.T) {
		_, err := ticket.RestoreTicket(id, accountID, "s", "b", ticket.StatusOpen, openedAt, &closedAt)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_Ticket_status_round_trips_through_string(t *testing.T) {
	for _, s := range []ticket.Status{ticket.StatusOpen, ticket.StatusClosed} {
		parsed, err := ticket.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ticket.StatusFromString("resolved")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
