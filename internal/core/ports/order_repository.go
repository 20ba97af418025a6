// Package ports defines the persistence contracts consumed by the
// application layer. These interfaces keep the domain independent of the
// storage adapter and make command handlers testable with fakes.
package ports

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// ErrConcurrentModification is reported by Update when the stored version
// of the order no longer matches the version the aggregate was loaded
// with. The caller is expected to refetch and retry a bounded number of
// times; the condition is normal under contention, not a bug.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is
	// optimistic: it only succeeds when the stored version equals the
	// aggregate's loaded version, and it bumps both on success. A stale
	// version yields ErrConcurrentModification; a missing row yields a
	// not-found error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetDraftsNotUpdatedSince retrieves Draft orders whose last
	// modification is older than the cutoff. Used by the stale-draft
	// expiry job.
	GetDraftsNotUpdatedSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
