package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its items from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no
// order exists with the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.readOrderRow(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.readItemRows(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) readOrderRow(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			address_street,
			address_city,
			address_state,
			address_postal_code,
			address_country,
			subtotal,
			tax,
			shipping,
			total,
			created_at,
			updated_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var response GetOrderQueryResponse
	var id, customerID uuid.UUID
	var status int
	var subtotal, tax, shipping, total decimal.Decimal

	err = rows.Scan(
		&id,
		&customerID,
		&status,
		&response.Address.Street,
		&response.Address.City,
		&response.Address.State,
		&response.Address.PostalCode,
		&response.Address.Country,
		&subtotal,
		&tax,
		&shipping,
		&total,
		&response.CreatedAt,
		&response.UpdatedAt,
		&response.Version,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Status = order.Status(status).String()
	response.Subtotal = kernel.NewMoney(subtotal)
	response.Tax = kernel.NewMoney(tax)
	response.Shipping = kernel.NewMoney(shipping)
	response.Total = kernel.NewMoney(total)

	return response, rows.Err()
}

func (h GetOrderQueryHandler) readItemRows(ctx context.Context, query GetOrderQuery) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price,
			discount_percent
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&item.ProductID,
			&item.Quantity,
			&unitPrice,
			&item.DiscountPercent,
		)
		if err != nil {
			return nil, err
		}

		item.UnitPrice = kernel.NewMoney(unitPrice)
		item.LineTotal = lineTotal(item.UnitPrice, item.Quantity, item.DiscountPercent)
		items = append(items, item)
	}

	return items, rows.Err()
}

// lineTotal recomputes the rounded line amount for the read model using
// the same half-up rule the pricing engine applies.
func lineTotal(unitPrice kernel.Money, quantity, discountPercent int) kernel.Money {
	factor := decimal.NewFromInt(int64(100 - discountPercent)).Div(decimal.NewFromInt(100))
	return unitPrice.MulInt(quantity).Mul(factor).Round2()
}
