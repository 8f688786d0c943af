package ports

import (
	"context"

	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
// A booking is stored together with its tracking events; loading a booking
// always loads the full event history.
type BookingRepository interface {
	// Add persists a new booking aggregate along with its creation event
	// in a single transaction. Returns a conflict error when the tracking
	// identifier is already taken.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate, inserting
	// tracking events appended since the last load.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetByTrackingID retrieves a booking by its public tracking identifier.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*booking.Booking, error)
}
