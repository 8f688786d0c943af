package invoicerepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"cargo/internal/core/domain/model/invoice"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkPaid settles a pending invoice with a single conditional update so
// that concurrent payment attempts resolve to exactly one success. A valid
// ownerID additionally requires the invoiced booking to belong to that
// customer; a zero ownerID skips the ownership filter.
func (r *GormInvoiceRepository) MarkPaid(ctx context.Context, id kernel.UUID, ownerID kernel.UUID, paidAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), invoice.StatusPending.String())
	if ownerID.Validate() == nil {
		q = q.Where("booking_id IN (SELECT id FROM bookings WHERE customer_id = ?)", ownerID.Bytes())
	}

	result := q.Updates(map[string]any{
		"status":  invoice.StatusPaid.String(),
		"paid_at": paidAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// No row changed: distinguish a missing invoice, one owned by another
	// customer, and one that is already settled.
	var count int64
	if err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("invoice", id.String())
	}

	if ownerID.Validate() == nil {
		var owned int64
		if err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
			Where("id = ?", id.Bytes()).
			Where("booking_id IN (SELECT id FROM bookings WHERE customer_id = ?)", ownerID.Bytes()).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned == 0 {
			return errs.NewUnauthorizedError(errs.DenyNotOwner, "markPaid")
		}
	}

	return invoice.ErrInvoiceIsNotPending
}
