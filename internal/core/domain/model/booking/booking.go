package booking

import (
	"errors"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// DeliveryLeadTime is the fixed interval between booking and the expected
// delivery estimate shown to the customer.
const DeliveryLeadTime = 5 * 24 * time.Hour

var (
	// ErrBookingIsNotConstructed is returned when a Booking instance was not
	// created through NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking")

	// ErrBookingIsClosed is returned when appending a tracking event to a
	// booking whose current status is terminal.
	ErrBookingIsClosed = errors.New("booking is in a terminal status and accepts no further tracking events")
)

// Locations and notes used for the events the system writes on its own.
const (
	creationLocation = "Shipment Booked"
	creationNote     = "Shipment created by customer"
	overrideLocation = "Administration"
	overrideNote     = "Status corrected by administrator"
)

// Booking represents one shipment and is the aggregate root for its
// tracking history.
//
// Booking maintains these invariants:
//   - The tracking identifier is immutable and globally unique (uniqueness
//     enforced by a storage constraint plus collision-checked generation)
//   - The owning customer reference is immutable after creation
//   - The booking always holds at least one tracking event; the creation
//     event is emitted inside NewBooking so booking and first event form
//     one atomic unit
//   - The current status equals the status of the event with the latest
//     timestamp, ties broken by insertion order
//   - History is append-only: events are never modified or removed
//   - The assigned employee may be set and reassigned; assignment never
//     changes status
type Booking struct {
	id               kernel.UUID
	trackingID       kernel.TrackingID
	customerID       kernel.UUID
	sender           Party
	recipient        Party
	cargoDescription string
	weight           float64
	declaredValue    float64
	totalCharge      float64
	status           Status
	assignedEmployee *kernel.UUID
	bookedAt         time.Time
	expectedDelivery time.Time
	events           []*TrackingEvent

	isConstructed bool
}

// NewBooking creates a shipment with its creation tracking event in one
// step. The booking starts in pending status, the total charge is computed
// by the given policy, and the expected delivery estimate is bookedAt plus
// the fixed lead time.
func NewBooking(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	customerID kernel.UUID,
	sender, recipient Party,
	cargoDescription string,
	weight, declaredValue float64,
	policy ChargePolicy,
	bookedAt time.Time,
) (*Booking, error) {
	b := &Booking{
		cargoDescription: cargoDescription,
		status:           StatusPending,
		isConstructed:    true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setTrackingID(trackingID),
		b.setCustomerID(customerID),
		b.setSender(sender),
		b.setRecipient(recipient),
		b.setWeight(weight),
		b.setDeclaredValue(declaredValue),
		b.setBookedAt(bookedAt),
	); err != nil {
		return nil, err
	}

	if policy == nil {
		return nil, errs.NewValueIsRequiredError("chargePolicy")
	}
	b.totalCharge = policy.Total(b.weight, b.declaredValue)
	b.expectedDelivery = b.bookedAt.Add(DeliveryLeadTime)

	event, err := NewTrackingEvent(kernel.NewUUID(), b.id, StatusPending, creationLocation, creationNote, b.bookedAt)
	if err != nil {
		return nil, err
	}
	b.events = []*TrackingEvent{event}

	return b, nil
}

// RestoreBooking reconstructs a booking and its history from persisted
// state. Events must be in insertion order and non-empty; the stored status
// must match the status derived from the history.
func RestoreBooking(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	customerID kernel.UUID,
	sender, recipient Party,
	cargoDescription string,
	weight, declaredValue, totalCharge float64,
	status Status,
	assignedEmployee *kernel.UUID,
	bookedAt, expectedDelivery time.Time,
	events []*TrackingEvent,
) (*Booking, error) {
	b := &Booking{
		cargoDescription: cargoDescription,
		totalCharge:      totalCharge,
		expectedDelivery: expectedDelivery,
		isConstructed:    true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setTrackingID(trackingID),
		b.setCustomerID(customerID),
		b.setSender(sender),
		b.setRecipient(recipient),
		b.setWeight(weight),
		b.setDeclaredValue(declaredValue),
		b.setBookedAt(bookedAt),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	b.status = status

	if len(events) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("events",
			fmt.Errorf("booking %s has no tracking events", id))
	}
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}
	b.events = events

	if assignedEmployee != nil {
		if err := assignedEmployee.Validate(); err != nil {
			return nil, err
		}
		b.assignedEmployee = assignedEmployee
	}

	return b, nil
}

// Validate ensures the Booking was constructed through a factory function.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

// IsEqual compares two bookings by identifier.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// TrackingID returns the immutable public tracking identifier.
func (b *Booking) TrackingID() kernel.TrackingID {
	return b.trackingID
}

// CustomerID returns the immutable owning customer reference.
func (b *Booking) CustomerID() kernel.UUID {
	return b.customerID
}

// Sender returns the sender contact block.
func (b *Booking) Sender() Party {
	return b.sender
}

// Recipient returns the recipient contact block.
func (b *Booking) Recipient() Party {
	return b.recipient
}

// CargoDescription returns the free-text cargo description.
func (b *Booking) CargoDescription() string {
	return b.cargoDescription
}

// Weight returns the cargo weight.
func (b *Booking) Weight() float64 {
	return b.weight
}

// DeclaredValue returns the declared cargo value.
func (b *Booking) DeclaredValue() float64 {
	return b.declaredValue
}

// TotalCharge returns the charge computed at creation.
func (b *Booking) TotalCharge() float64 {
	return b.totalCharge
}

// Status returns the current shipment status, which always equals the
// status of the most recent tracking event.
func (b *Booking) Status() Status {
	return b.status
}

// AssignedEmployee returns the assigned employee's account id, or nil when
// the shipment is unassigned.
func (b *Booking) AssignedEmployee() *kernel.UUID {
	return b.assignedEmployee
}

// BookedAt returns the booking timestamp.
func (b *Booking) BookedAt() time.Time {
	return b.bookedAt
}

// ExpectedDelivery returns the delivery estimate.
func (b *Booking) ExpectedDelivery() time.Time {
	return b.expectedDelivery
}

// Events returns the tracking history in insertion order. The returned
// slice is shared; callers must not modify it.
func (b *Booking) Events() []*TrackingEvent {
	return b.events
}

// LatestEvent returns the event that defines the current status: the one
// with the latest timestamp, ties broken by insertion order.
func (b *Booking) LatestEvent() *TrackingEvent {
	latest := b.events[0]
	for _, e := range b.events[1:] {
		if !e.OccurredAt().Before(latest.OccurredAt()) {
			latest = e
		}
	}
	return latest
}

// AppendEvent records a new tracking event and advances the current status
// to the status of whichever event is now latest. This is the canonical
// status-change path. Appending to a booking in a terminal status is
// rejected with ErrBookingIsClosed.
func (b *Booking) AppendEvent(status Status, location, note string, occurredAt time.Time) (*TrackingEvent, error) {
	if b.status.IsTerminal() {
		return nil, ErrBookingIsClosed
	}

	event, err := NewTrackingEvent(kernel.NewUUID(), b.id, status, location, note, occurredAt)
	if err != nil {
		return nil, err
	}

	b.events = append(b.events, event)
	b.status = b.LatestEvent().Status()
	return event, nil
}

// OverrideStatus is the administrative status correction. Unlike
// AppendEvent it is permitted from terminal statuses, because its purpose
// is to fix mistakes (a shipment closed in error included). The overwrite
// still synthesizes a tracking event so the history explains every status
// the booking has ever shown.
func (b *Booking) OverrideStatus(status Status, occurredAt time.Time) (*TrackingEvent, error) {
	event, err := NewTrackingEvent(kernel.NewUUID(), b.id, status, overrideLocation, overrideNote, occurredAt)
	if err != nil {
		return nil, err
	}

	b.events = append(b.events, event)
	b.status = b.LatestEvent().Status()
	return event, nil
}

// AssignEmployee sets or reassigns the employee responsible for the
// shipment. Assignment never changes status.
func (b *Booking) AssignEmployee(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	b.assignedEmployee = &employeeID
	return nil
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	b.trackingID = trackingID
	return nil
}

func (b *Booking) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	b.customerID = customerID
	return nil
}

func (b *Booking) setSender(sender Party) error {
	if err := sender.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sender", err)
	}
	b.sender = sender
	return nil
}

func (b *Booking) setRecipient(recipient Party) error {
	if err := recipient.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}
	b.recipient = recipient
	return nil
}

func (b *Booking) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%f is negative", weight))
	}
	b.weight = weight
	return nil
}

func (b *Booking) setDeclaredValue(declaredValue float64) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue", fmt.Errorf("%f is negative", declaredValue))
	}
	b.declaredValue = declaredValue
	return nil
}

func (b *Booking) setBookedAt(bookedAt time.Time) error {
	if bookedAt.IsZero() {
		return errs.NewValueIsRequiredError("bookedAt")
	}
	b.bookedAt = bookedAt
	return nil
}
