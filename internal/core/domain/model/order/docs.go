// Package order provides the order aggregate and its lifecycle for the
// ordering system.
//
// The package includes:
//   - Order: the aggregate root owning items, address, totals, and status
//   - Item: an immutable priced line with per-line currency rounding
//   - Address: a plain shipping-destination value object
//   - Status: a state machine backed by an explicit transition table
//
// Key business rules:
//   - orders start in Draft and keep a non-empty item list
//   - item edits are only legal in Draft
//   - total always equals subtotal + tax + shipping after pricing
//   - Delivered and Cancelled are terminal statuses
//   - every order carries an optimistic-concurrency version
//
// The package follows Domain-Driven Design principles: private fields,
// validating constructors, and behavior-rich methods that keep the
// aggregate in a consistent state.
package order
