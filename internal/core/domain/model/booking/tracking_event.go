package booking

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
// created through NewTrackingEvent or RestoreTrackingEvent.
var ErrTrackingEventIsNotConstructed = errors.New("TrackingEvent must be created via NewTrackingEvent or RestoreTrackingEvent")

// TrackingEvent is one write-once entry in a booking's history: a status,
// a free-text location, an optional free-text note, and the time the entry
// was recorded. Events are never updated or deleted; the history is an
// audit log.
type TrackingEvent struct {
	id         kernel.UUID
	bookingID  kernel.UUID
	status     Status
	location   string
	note       string
	occurredAt time.Time

	isConstructed bool
}

// NewTrackingEvent creates a history entry for the given booking.
// Location is required; the note may be empty.
func NewTrackingEvent(id, bookingID kernel.UUID, status Status, location, note string, occurredAt time.Time) (*TrackingEvent, error) {
	e := &TrackingEvent{
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setBookingID(bookingID),
		e.setStatus(status),
		e.setLocation(location),
		e.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreTrackingEvent reconstructs a history entry from persisted state.
func RestoreTrackingEvent(id, bookingID kernel.UUID, status Status, location, note string, occurredAt time.Time) (*TrackingEvent, error) {
	return NewTrackingEvent(id, bookingID, status, location, note, occurredAt)
}

// Validate ensures the event was constructed through a factory function.
func (e *TrackingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *TrackingEvent) ID() kernel.UUID {
	return e.id
}

// BookingID returns the owning booking's identifier.
func (e *TrackingEvent) BookingID() kernel.UUID {
	return e.bookingID
}

// Status returns the shipment status this event recorded.
func (e *TrackingEvent) Status() Status {
	return e.status
}

// Location returns the free-text location.
func (e *TrackingEvent) Location() string {
	return e.location
}

// Note returns the free-text note, possibly empty.
func (e *TrackingEvent) Note() string {
	return e.note
}

// OccurredAt returns when the entry was recorded.
func (e *TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *TrackingEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *TrackingEvent) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.bookingID = id
	return nil
}

func (e *TrackingEvent) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *TrackingEvent) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	e.location = location
	return nil
}

func (e *TrackingEvent) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	e.occurredAt = occurredAt
	return nil
}
