// Package kernel contains shared value objects used across the ordering
// domain model.
//
// The package includes:
//   - UUID: identifier value object for entities and aggregates
//   - Money: immutable fixed-point currency amount with explicit rounding
//
// Both types are immutable, validate themselves, and are safe to share
// between goroutines. Domain aggregates build on these primitives instead
// of using raw strings and floats, which keeps identity comparison and
// currency arithmetic exact.
package kernel
