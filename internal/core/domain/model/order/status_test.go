package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Draft,
		order.Pending,
		order.Confirmed,
		order.Shipped,
		order.Delivered,
		order.Cancelled,
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Draft))
		assert.Equal(t, 2, int(order.Pending))
		assert.Equal(t, 3, int(order.Confirmed))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(7), order.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				require.Error(t, status.Validate())
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := map[order.Status]string{
		order.Unknown:   "Unknown",
		order.Draft:     "Draft",
		order.Pending:   "Pending",
		order.Confirmed: "Confirmed",
		order.Shipped:   "Shipped",
		order.Delivered: "Delivered",
		order.Cancelled: "Cancelled",
	}

	for status, expected := range testCases {
		assert.Equal(t, expected, status.String())
	}

	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse names ignoring case", func(t *testing.T) {
		status, err := order.StatusFromString("DRAFT")

		require.NoError(t, err)
		assert.Equal(t, order.Draft, status)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Archived")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject Unknown", func(t *testing.T) {
		_, err := order.StatusFromString("Unknown")

		require.Error(t, err)
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Draft:     {order.Pending, order.Cancelled},
		order.Pending:   {order.Confirmed, order.Cancelled},
		order.Confirmed: {order.Shipped, order.Cancelled},
		order.Shipped:   {order.Delivered},
		order.Delivered: {},
		order.Cancelled: {},
	}

	isAllowed := func(from, to order.Status) bool {
		for _, target := range allowed[from] {
			if target == to {
				return true
			}
		}
		return false
	}

	t.Run("should permit exactly the edges of the lifecycle graph", func(t *testing.T) {
		for _, from := range allStatuses() {
			for _, to := range allStatuses() {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					newStatus, err := from.TransitionTo(to)

					if isAllowed(from, to) {
						require.NoError(t, err)
						assert.Equal(t, to, newStatus)
					} else {
						require.Error(t, err)
						require.ErrorIs(t, err, order.ErrInvalidTransition)
					}
				})
			}
		}
	})

	t.Run("should reject same-state transitions", func(t *testing.T) {
		for _, status := range allStatuses() {
			_, err := status.TransitionTo(status)
			require.Error(t, err, "%s -> %s must be rejected", status, status)
		}
	})

	t.Run("rejection reports both statuses", func(t *testing.T) {
		_, err := order.Shipped.TransitionTo(order.Cancelled)

		require.Error(t, err)
		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Shipped, transitionErr.From)
		assert.Equal(t, order.Cancelled, transitionErr.To)
		assert.Contains(t, err.Error(), "Shipped")
		assert.Contains(t, err.Error(), "Cancelled")
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, status := range []order.Status{order.Draft, order.Pending, order.Confirmed, order.Shipped} {
		assert.False(t, status.IsTerminal(), "%s is not terminal", status)
	}
}
