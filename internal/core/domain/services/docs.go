// Package services contains stateless domain services that operate across
// the ordering aggregates.
//
// The package includes:
//   - PricingEngine: derives subtotal, tax, shipping, and total from an
//     order's items with a fixed per-line rounding policy
//   - DeliveryEstimator: projects delivery dates in business days from an
//     explicit reference date
//
// Both services are pure: no I/O, no shared state, no clock reads, so
// they need no concurrency control and can be called from any goroutine.
package services
