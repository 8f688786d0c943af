// Package account contains the identity side of the cargo domain model.
//
// Account is the aggregate root for one identity in the system: its unique
// handle and contact address, the salted one-way hash of its credential, its
// role, and its lifecycle status. Role is fixed at creation; status is the
// only mutable identity attribute and only an administrator changes it.
// Accounts are never hard-deleted.
//
// CustomerProfile and EmployeeProfile are 1:1 extensions of an Account whose
// role matches. The employee profile carries the unique, monotonically
// assigned employee code that staff-facing screens display.
//
// Credential handling lives in this package so plaintext never crosses a
// package boundary: a plaintext credential enters HashCredential or
// CredentialHash.Verify and nothing else.
package account
