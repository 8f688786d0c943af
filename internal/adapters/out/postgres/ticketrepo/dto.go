// Package ticketrepo provides data transfer objects and mapping functions
// for support ticket persistence.
package ticketrepo

import (
	"time"

	"github.com/google/uuid"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ticket"
)

// TicketDTO represents the database structure for persisting support
// tickets.
type TicketDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Subject   string
	Body      string
	Status    string `gorm:"index"`
	OpenedAt  time.Time
	ClosedAt  *time.Time
}

// TableName specifies the database table name for ticket entities.
func (TicketDTO) TableName() string {
	return "tickets"
}

func fromDomain(aggregate *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:        aggregate.ID().Bytes(),
		AccountID: aggregate.AccountID().Bytes(),
		Subject:   aggregate.Subject(),
		Body:      aggregate.Body(),
		Status:    aggregate.Status().String(),
		OpenedAt:  aggregate.OpenedAt(),
		ClosedAt:  aggregate.ClosedAt(),
	}
}

func toDomain(dto TicketDTO) (*ticket.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	status, err := ticket.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return ticket.RestoreTicket(id, accountID, dto.Subject, dto.Body, status, dto.OpenedAt, dto.ClosedAt)
}
