package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Handle_AddsItemAndReprices(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	stored := newStoredOrder(t, orderID)

	item, err := order.NewItem("prod-3", 1, money(t, "10.00"), 0)
	require.NoError(t, err)
	cmd, err := commands.NewAddOrderItemCommand(orderID, item)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	expectAttempt(ctx, factory, stored, nil)

	h := commands.NewAddOrderItemCommandHandler(factory, services.NewPricingEngine())
	require.NoError(t, h.Handle(ctx, cmd))

	// 95.00 base plus the new 10.00 line crosses the free-shipping
	// threshold, so shipping drops to zero.
	assert.Len(t, stored.Items(), 3)
	assert.Equal(t, "105.00", stored.Subtotal().String())
	assert.Equal(t, "8.40", stored.Tax().String())
	assert.Equal(t, "0.00", stored.Shipping().String())
	assert.Equal(t, "113.40", stored.Total().String())
	factory.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_RejectsDuplicateProduct(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	stored := newStoredOrder(t, orderID)

	duplicate, err := order.NewItem("prod-1", 1, money(t, "25.00"), 0)
	require.NoError(t, err)
	cmd, err := commands.NewAddOrderItemCommand(orderID, duplicate)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory, services.NewPricingEngine())
	require.Error(t, h.Handle(ctx, cmd))
	assert.Len(t, stored.Items(), 2)
	factory.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_RejectsNonDraftOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	stored := newStoredOrder(t, orderID)
	require.NoError(t, stored.TransitionTo(order.Pending))

	item, err := order.NewItem("prod-3", 1, money(t, "10.00"), 0)
	require.NoError(t, err)
	cmd, err := commands.NewAddOrderItemCommand(orderID, item)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory, services.NewPricingEngine())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderNotEditable)
	factory.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddOrderItemCommand{} // not constructed properly
	h := commands.NewAddOrderItemCommandHandler(new(MockOrderUoWFactory), services.NewPricingEngine())
	require.Error(t, h.Handle(ctx, cmd))
}
