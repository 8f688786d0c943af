// Package booking contains the shipment side of the cargo domain model.
//
// Booking is the aggregate root for one shipment: the parties, the cargo
// detail, the computed charge, the assignment, and the full append-only
// tracking history the booking owns. The aggregate maintains the central
// invariant of the system: a booking's current status is the status of its
// most recent tracking event (latest timestamp, ties broken by insertion
// order), and a booking never exists without at least its creation event.
//
// TrackingEvent is a write-once child entity; history entries are never
// updated or deleted. Status is a value object enumerating the shipment
// lifecycle, with delivered and cancelled as terminal states.
//
// The total charge is computed by a ChargePolicy so the flat
// declared-value policy in use today can be replaced with tax or fee logic
// without touching the aggregate.
package booking
