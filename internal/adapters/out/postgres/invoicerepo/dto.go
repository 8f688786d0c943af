// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence.
package invoicerepo

import (
	"time"

	"github.com/google/uuid"

	"cargo/internal/core/domain/model/invoice"
	"cargo/internal/core/domain/model/kernel"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates.
type InvoiceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;index"`
	Amount    float64
	Status    string `gorm:"index"`
	IssuedAt  time.Time
	PaidAt    *time.Time
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:        aggregate.ID().Bytes(),
		BookingID: aggregate.BookingID().Bytes(),
		Amount:    aggregate.Amount(),
		Status:    aggregate.Status().String(),
		IssuedAt:  aggregate.IssuedAt(),
		PaidAt:    aggregate.PaidAt(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	status, err := invoice.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(id, bookingID, dto.Amount, status, dto.IssuedAt, dto.PaidAt)
}
