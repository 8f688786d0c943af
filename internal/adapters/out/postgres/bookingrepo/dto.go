// Package bookingrepo provides data transfer objects and mapping functions
// for booking persistence. A booking row is always accompanied by its
// tracking event rows; the two are written and read together.
package bookingrepo

import (
	"time"

	"github.com/google/uuid"

	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
)

// BookingDTO represents the database structure for persisting booking
// aggregates. The tracking identifier carries a unique index so that
// identifier collisions surface at the database level.
type BookingDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID       string    `gorm:"uniqueIndex"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	SenderName       string
	SenderAddress    string
	SenderPhone      string
	RecipientName    string
	RecipientAddress string
	RecipientPhone   string
	CargoDescription string
	Weight           float64
	DeclaredValue    float64
	TotalCharge      float64
	Status           string     `gorm:"index"`
	AssignedEmployee *uuid.UUID `gorm:"type:uuid;index"`
	BookedAt         time.Time
	ExpectedDelivery time.Time
}

// TableName specifies the database table name for booking entities.
func (BookingDTO) TableName() string {
	return "bookings"
}

// TrackingEventDTO represents one row of a booking's append-only history.
// Seq is assigned by the database and breaks ties between events sharing
// an occurrence timestamp.
type TrackingEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID  uuid.UUID `gorm:"type:uuid;index"`
	Status     string
	Location   string
	Note       string
	OccurredAt time.Time
	Seq        int64 `gorm:"autoIncrement"`
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(aggregate *booking.Booking) (BookingDTO, []TrackingEventDTO) {
	var assigned *uuid.UUID
	if id := aggregate.AssignedEmployee(); id != nil {
		raw := id.Bytes()
		assigned = &raw
	}

	dto := BookingDTO{
		ID:               aggregate.ID().Bytes(),
		TrackingID:       aggregate.TrackingID().String(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		SenderName:       aggregate.Sender().Name(),
		SenderAddress:    aggregate.Sender().Address(),
		SenderPhone:      aggregate.Sender().Phone(),
		RecipientName:    aggregate.Recipient().Name(),
		RecipientAddress: aggregate.Recipient().Address(),
		RecipientPhone:   aggregate.Recipient().Phone(),
		CargoDescription: aggregate.CargoDescription(),
		Weight:           aggregate.Weight(),
		DeclaredValue:    aggregate.DeclaredValue(),
		TotalCharge:      aggregate.TotalCharge(),
		Status:           aggregate.Status().String(),
		AssignedEmployee: assigned,
		BookedAt:         aggregate.BookedAt(),
		ExpectedDelivery: aggregate.ExpectedDelivery(),
	}

	events := make([]TrackingEventDTO, 0, len(aggregate.Events()))
	for _, e := range aggregate.Events() {
		events = append(events, TrackingEventDTO{
			ID:         e.ID().Bytes(),
			BookingID:  e.BookingID().Bytes(),
			Status:     e.Status().String(),
			Location:   e.Location(),
			Note:       e.Note(),
			OccurredAt: e.OccurredAt(),
		})
	}

	return dto, events
}

func toDomain(dto BookingDTO, eventDTOs []TrackingEventDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	sender, err := booking.NewParty(dto.SenderName, dto.SenderAddress, dto.SenderPhone)
	if err != nil {
		return nil, err
	}

	recipient, err := booking.NewParty(dto.RecipientName, dto.RecipientAddress, dto.RecipientPhone)
	if err != nil {
		return nil, err
	}

	status, err := booking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var assigned *kernel.UUID
	if dto.AssignedEmployee != nil {
		aID, assignedErr := kernel.UUIDFromBytes((*dto.AssignedEmployee)[:])
		if assignedErr != nil {
			return nil, assignedErr
		}

		assigned = &aID
	}

	events := make([]*booking.TrackingEvent, 0, len(eventDTOs))
	for _, e := range eventDTOs {
		event, eventErr := eventToDomain(e)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return booking.RestoreBooking(id, trackingID, customerID, sender, recipient,
		dto.CargoDescription, dto.Weight, dto.DeclaredValue, dto.TotalCharge,
		status, assigned, dto.BookedAt, dto.ExpectedDelivery, events)
}

func eventToDomain(dto TrackingEventDTO) (*booking.TrackingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	status, err := booking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return booking.RestoreTrackingEvent(id, bookingID, status, dto.Location, dto.Note, dto.OccurredAt)
}
