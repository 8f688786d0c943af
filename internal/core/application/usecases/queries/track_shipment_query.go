// Package queries contains read-only projections over the cargo store.
// Query handlers bypass the aggregates and read directly with SQL; they
// never modify state. Role scoping is applied per query: customers see only
// their own records, employees their assigned shipments, administrators
// everything.
package queries

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves a shipment and its full tracking history by
// the public tracking identifier.
type TrackShipmentQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a query to look up a shipment by tracking identifier.
func NewTrackShipmentQuery(trackingID kernel.TrackingID) (TrackShipmentQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackShipmentQuery{}, err
	}
	return TrackShipmentQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingID returns the tracking identifier to look up.
func (q TrackShipmentQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// TrackingEventResponse is one entry of a shipment's history.
type TrackingEventResponse struct {
	Status     string
	Location   string
	Note       string
	OccurredAt time.Time
}

// TrackShipmentQueryResponse is the public view of a shipment: current
// state plus the complete history, newest event first.
type TrackShipmentQueryResponse struct {
	BookingID        kernel.UUID
	TrackingID       string
	SenderName       string
	RecipientName    string
	RecipientAddress string
	Status           string
	BookedAt         time.Time
	ExpectedDelivery time.Time
	History          []TrackingEventResponse
}
