// Package kernel contains the shared value objects of the cargo domain model.
//
// The kernel holds types that more than one aggregate depends on:
//
//   - UUID: the internal identifier for accounts, bookings, invoices and
//     tickets. A thin immutable wrapper over github.com/google/uuid whose
//     zero value is invalid, forcing construction through a factory.
//   - TrackingID: the short opaque public code customers and staff use to
//     look up a shipment. Fixed length, uppercase alphanumeric, generated
//     from a cryptographic source and collision-checked by the caller
//     against storage.
//
// Kernel types are immutable and safe for concurrent use. They carry no
// behavior beyond construction, validation and comparison; business rules
// live in the aggregates that use them.
package kernel
