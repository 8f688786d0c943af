package queries

import (
	"errors"

	"cargo/internal/core/domain/model/ticket"
	"cargo/internal/pkg/guard"
)

var ErrListTicketsQueryIsNotConstructed = errors.New(
	"ListTicketsQuery must be created via NewListTicketsQuery constructor",
)

// ListTicketsQuery retrieves support tickets for the back office, optionally
// filtered by status. Administrator only.
type ListTicketsQuery struct {
	status    ticket.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewListTicketsQuery creates an unfiltered ticket listing query.
func NewListTicketsQuery() ListTicketsQuery {
	return ListTicketsQuery{guard: guard.NewConstructorGuard()}
}

// NewListTicketsQueryWithStatus creates a ticket listing query filtered by
// status.
func NewListTicketsQueryWithStatus(status ticket.Status) (ListTicketsQuery, error) {
	if err := status.Validate(); err != nil {
		return ListTicketsQuery{}, err
	}

	return ListTicketsQuery{
		status:    status,
		hasStatus: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListTicketsQuery) Validate() error {
	return q.guard.Validate(ErrListTicketsQueryIsNotConstructed)
}

// Status returns the status filter and whether one was set.
func (q ListTicketsQuery) Status() (ticket.Status, bool) {
	return q.status, q.hasStatus
}
