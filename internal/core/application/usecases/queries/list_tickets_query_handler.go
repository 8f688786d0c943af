package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
)

// TicketSummaryResponse is one row of the back-office ticket listing.
type TicketSummaryResponse struct {
	TicketID kernel.UUID
	Handle   string
	Subject  string
	Status   string
	OpenedAt time.Time
	ClosedAt *time.Time
}

// ListTicketsQueryHandler lists support tickets for administrators.
type ListTicketsQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewListTicketsQueryHandler creates a handler for ticket listings.
func NewListTicketsQueryHandler(db *gorm.DB, policy *services.AccessPolicy) ListTicketsQueryHandler {
	return ListTicketsQueryHandler{db: db, policy: policy}
}

// Handle executes the listing with open tickets first, oldest first within
// each status.
func (h ListTicketsQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query ListTicketsQuery,
) ([]TicketSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(principal, services.OpViewTickets); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			t.id,
			a.handle,
			t.subject,
			t.status,
			t.opened_at,
			t.closed_at
		FROM tickets t
		JOIN accounts a ON a.id = t.account_id
	`
	args := make([]any, 0, 1)
	if status, ok := query.Status(); ok {
		sqlText += ` WHERE t.status = ?`
		args = append(args, status.String())
	}
	sqlText += ` ORDER BY t.status DESC, t.opened_at`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]TicketSummaryResponse, 0)
	for rows.Next() {
		var summary TicketSummaryResponse
		var id uuid.UUID
		var closedAt sql.NullTime

		err = rows.Scan(&id, &summary.Handle, &summary.Subject, &summary.Status, &summary.OpenedAt, &closedAt)
		if err != nil {
			return nil, err
		}

		if summary.TicketID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if closedAt.Valid {
			t := closedAt.Time
			summary.ClosedAt = &t
		}
		tickets = append(tickets, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
