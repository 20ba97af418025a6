package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterUserRequest is the body of POST /api/v1/users. The password is
// validated for strength and then discarded, never persisted.
type RegisterUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}

// RegisterUserResponse is the body returned on successful registration.
type RegisterUserResponse struct {
	ID string `json:"id"`
}

// AddressRequest is the shipping destination of a new order.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderItemRequest is one line of a new order. UnitPrice travels as a
// decimal string so amounts never pass through binary floats.
type OrderItemRequest struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unitPrice"`
	DiscountPercent int    `json:"discountPercent"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string             `json:"customerId"`
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress AddressRequest     `json:"shippingAddress"`
}

// CreateOrderResponse is the body returned on successful order creation.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AddOrderItemRequest is the body of POST /api/v1/orders/{id}/items.
type AddOrderItemRequest struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unitPrice"`
	DiscountPercent int    `json:"discountPercent"`
}

// AddressResponse mirrors AddressRequest on the way out.
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderItemResponse is one order line in a read response.
type OrderItemResponse struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unitPrice"`
	DiscountPercent int    `json:"discountPercent"`
	LineTotal       string `json:"lineTotal"`
}

// OrderResponse is the body of GET /api/v1/orders/{id}.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customerId"`
	Status     string              `json:"status"`
	Address    AddressResponse     `json:"shippingAddress"`
	Items      []OrderItemResponse `json:"items"`
	Subtotal   string              `json:"subtotal"`
	Tax        string              `json:"tax"`
	Shipping   string              `json:"shipping"`
	Total      string              `json:"total"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
	Version    int                 `json:"version"`
}

// OrderSummaryResponse is one entry of GET /api/v1/users/{id}/orders.
type OrderSummaryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	ItemCount int       `json:"itemCount"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// DeliveryEstimateResponse is the body of
// GET /api/v1/orders/{id}/delivery-estimate.
type DeliveryEstimateResponse struct {
	Method        string `json:"method"`
	EstimatedDate string `json:"estimatedDate"`
}

func toOrderResponse(result queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemResponse{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice.String(),
			DiscountPercent: item.DiscountPercent,
			LineTotal:       item.LineTotal.String(),
		})
	}

	return OrderResponse{
		ID:         result.ID.String(),
		CustomerID: result.CustomerID.String(),
		Status:     result.Status,
		Address: AddressResponse{
			Street:     result.Address.Street,
			City:       result.Address.City,
			State:      result.Address.State,
			PostalCode: result.Address.PostalCode,
			Country:    result.Address.Country,
		},
		Items:     items,
		Subtotal:  result.Subtotal.String(),
		Tax:       result.Tax.String(),
		Shipping:  result.Shipping.String(),
		Total:     result.Total.String(),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
		Version:   result.Version,
	}
}

func toOrderSummaryResponses(results []queries.GetCustomerOrdersQueryResponse) []OrderSummaryResponse {
	summaries := make([]OrderSummaryResponse, 0, len(results))
	for _, result := range results {
		summaries = append(summaries, OrderSummaryResponse{
			ID:        result.ID.String(),
			Status:    result.Status,
			ItemCount: result.ItemCount,
			Total:     result.Total.String(),
			CreatedAt: result.CreatedAt,
		})
	}
	return summaries
}
