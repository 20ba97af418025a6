// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows,
// and enforces optimistic concurrency through a version column.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Timestamps are owned by the domain, so GORM's automatic
// tracking is disabled on them. Version backs the optimistic lock.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index"`
	Address    AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Status     int             `gorm:"index"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Shipping   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt  time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime:false"`
	Version    int
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address columns within the
// orders table.
type AddressDTO struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// OrderItemDTO represents one order line. Lines carry no identity in the
// domain, so the surrogate key exists only for stable ordering.
type OrderItemDTO struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ProductID       string
	Quantity        int
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2)"`
	DiscountPercent int
}

// TableName overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:         aggregate.ID().Bytes(),
			ProductID:       item.ProductID(),
			Quantity:        item.Quantity(),
			UnitPrice:       item.UnitPrice().Decimal(),
			DiscountPercent: item.DiscountPercent(),
		})
	}

	address := aggregate.ShippingAddress()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Address: AddressDTO{
			Street:     address.Street,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		Status:    int(aggregate.Status()),
		Subtotal:  aggregate.Subtotal().Decimal(),
		Tax:       aggregate.Tax().Decimal(),
		Shipping:  aggregate.Shipping().Decimal(),
		Total:     aggregate.Total().Decimal(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
		Items:     items,
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, which re-validates every invariant on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.ProductID,
			itemDTO.Quantity,
			kernel.NewMoney(itemDTO.UnitPrice),
			itemDTO.DiscountPercent,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		order.Address{
			Street:     dto.Address.Street,
			City:       dto.Address.City,
			State:      dto.Address.State,
			PostalCode: dto.Address.PostalCode,
			Country:    dto.Address.Country,
		},
		order.Status(dto.Status),
		kernel.NewMoney(dto.Subtotal),
		kernel.NewMoney(dto.Tax),
		kernel.NewMoney(dto.Shipping),
		kernel.NewMoney(dto.Total),
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
