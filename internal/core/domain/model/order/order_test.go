package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() order.Address {
	return order.Address{
		Street:     "123 Main St",
		City:       "Boston",
		State:      "MA",
		PostalCode: "02101",
		Country:    "US",
	}
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	first, err := order.NewItem("prod-1", 2, money(t, "25.00"), 0)
	require.NoError(t, err)
	second, err := order.NewItem("prod-2", 1, money(t, "50.00"), 10)
	require.NoError(t, err)
	return []order.Item{first, second}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testItems(t), testAddress())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Draft status", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID, testItems(t), testAddress())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Draft, o.Status())
		assert.Len(t, o.Items(), 2)
		assert.True(t, o.ShippingAddress().IsEqual(testAddress()))
		assert.Equal(t, 1, o.Version())
		assert.False(t, o.CreatedAt().IsZero())
		assert.True(t, o.Total().IsZero())
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, testAddress())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), testItems(t), testAddress())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, testItems(t), testAddress())
		require.Error(t, err)
	})

	t.Run("should reject unconstructed items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{{}}, testAddress())

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_ApplyTotals(t *testing.T) {
	t.Run("should set the four fields together", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ApplyTotals(money(t, "95.00"), money(t, "7.60"), money(t, "9.99"), money(t, "112.59"))

		require.NoError(t, err)
		assert.Equal(t, "95.00", o.Subtotal().String())
		assert.Equal(t, "7.60", o.Tax().String())
		assert.Equal(t, "9.99", o.Shipping().String())
		assert.Equal(t, "112.59", o.Total().String())
	})

	t.Run("should reject inconsistent totals", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ApplyTotals(money(t, "95.00"), money(t, "7.60"), money(t, "9.99"), money(t, "100.00"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ApplyTotals(money(t, "-1.00"), kernel.ZeroMoney(), kernel.ZeroMoney(), money(t, "-1.00"))

		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("full lifecycle path is legal", func(t *testing.T) {
		o := newTestOrder(t)

		for _, target := range []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Delivered} {
			require.NoError(t, o.TransitionTo(target))
			assert.Equal(t, target, o.Status())
		}
	})

	t.Run("rejected transition leaves order unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.UpdatedAt()

		err := o.TransitionTo(order.Shipped)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, before, o.UpdatedAt())
	})

	t.Run("transition touches modification timestamp", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.UpdatedAt()
		time.Sleep(time.Millisecond)

		require.NoError(t, o.TransitionTo(order.Pending))

		assert.True(t, o.UpdatedAt().After(before))
	})

	t.Run("no transition leaves a terminal status", func(t *testing.T) {
		delivered := newTestOrder(t)
		require.NoError(t, delivered.TransitionTo(order.Pending))
		require.NoError(t, delivered.TransitionTo(order.Confirmed))
		require.NoError(t, delivered.TransitionTo(order.Shipped))
		require.NoError(t, delivered.TransitionTo(order.Delivered))

		cancelled := newTestOrder(t)
		require.NoError(t, cancelled.Cancel())

		targets := []order.Status{
			order.Draft, order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled,
		}
		for _, target := range targets {
			require.Error(t, delivered.TransitionTo(target))
			require.Error(t, cancelled.TransitionTo(target))
		}
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel Draft order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should cancel Pending order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Pending))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should fail for Shipped order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Pending))
		require.NoError(t, o.TransitionTo(order.Confirmed))
		require.NoError(t, o.TransitionTo(order.Shipped))

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Shipped, o.Status())
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append item in Draft", func(t *testing.T) {
		o := newTestOrder(t)
		item, err := order.NewItem("prod-3", 1, money(t, "5.00"), 0)
		require.NoError(t, err)

		require.NoError(t, o.AddItem(item))
		assert.Len(t, o.Items(), 3)
	})

	t.Run("should reject outside Draft", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Pending))
		item, err := order.NewItem("prod-3", 1, money(t, "5.00"), 0)
		require.NoError(t, err)

		err = o.AddItem(item)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderNotEditable)
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should reject duplicate product line", func(t *testing.T) {
		o := newTestOrder(t)
		item, err := order.NewItem("prod-1", 1, money(t, "5.00"), 0)
		require.NoError(t, err)

		require.Error(t, o.AddItem(item))
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("should remove item in Draft", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.RemoveItem("prod-1"))

		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "prod-2", items[0].ProductID())
	})

	t.Run("should reject outside Draft", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Pending))

		err := o.RemoveItem("prod-1")

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderNotEditable)
	})

	t.Run("should reject unknown product", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.RemoveItem("prod-404")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should keep the item list non-empty", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.RemoveItem("prod-1"))

		err := o.RemoveItem("prod-2")

		require.Error(t, err)
		assert.Len(t, o.Items(), 1)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild a persisted order", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		o, err := order.RestoreOrder(
			id, customerID, testItems(t), testAddress(), order.Confirmed,
			money(t, "95.00"), money(t, "7.60"), money(t, "9.99"), money(t, "112.59"),
			createdAt, updatedAt, 4,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, 4, o.Version())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
		assert.Equal(t, "112.59", o.Total().String())
	})

	t.Run("should reject broken totals invariant", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), testAddress(), order.Draft,
			money(t, "95.00"), money(t, "7.60"), money(t, "9.99"), money(t, "999.99"),
			time.Now(), time.Now(), 1,
		)

		require.Error(t, err)
	})

	t.Run("should reject invalid status and version", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), testAddress(), order.Unknown,
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(),
			time.Now(), time.Now(), 0,
		)

		require.Error(t, err)
	})
}

func TestOrder_IncrementVersion(t *testing.T) {
	o := newTestOrder(t)

	o.IncrementVersion()

	assert.Equal(t, 2, o.Version())
}
