// Package services provides domain services that span multiple aggregates
// in the cargo system.
//
// The package includes:
//   - AccessPolicy: decides which roles may invoke which operations
//
// Ownership checks (a customer acting on someone else's booking) stay with
// the use case handlers, which have the aggregates at hand; AccessPolicy
// covers the role dimension only.
package services
