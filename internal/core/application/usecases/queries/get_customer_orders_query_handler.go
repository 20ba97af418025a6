package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history from
// the database. An unknown customer simply yields an empty history.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total,
			o.created_at,
			COUNT(i.id) AS item_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.customer_id = ?
		GROUP BY o.id, o.status, o.total, o.created_at
		ORDER BY o.created_at DESC, o.id
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetCustomerOrdersQueryResponse
		var id uuid.UUID
		var status int
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&status,
			&total,
			&summary.CreatedAt,
			&summary.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		summary.Status = order.Status(status).String()
		summary.Total = kernel.NewMoney(total)
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
