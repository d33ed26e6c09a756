package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartLineRepository struct{ mock.Mock }

func (m *MockCartLineRepository) Add(ctx context.Context, line *cart.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartLineRepository) Update(ctx context.Context, line *cart.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartLineRepository) GetLineForUpdate(
	ctx context.Context, customerID, menuItemID kernel.UUID,
) (*cart.Line, error) {
	args := m.Called(ctx, customerID, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Line), args.Error(1)
}

func (m *MockCartLineRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*cart.Line, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Line), args.Error(1)
}

func (m *MockCartLineRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCartLineRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockCartMenuItemRepository struct{ mock.Mock }

func (m *MockCartMenuItemRepository) Add(_ context.Context, _ *menu.Item) error {
	return errors.New("not implemented in mock")
}

func (m *MockCartMenuItemRepository) Update(_ context.Context, _ *menu.Item) error {
	return errors.New("not implemented in mock")
}

func (m *MockCartMenuItemRepository) Get(_ context.Context, _ kernel.UUID) (*menu.Item, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockCartMenuItemRepository) GetByTitle(ctx context.Context, title string) (*menu.Item, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockCartMenuItemRepository) Delete(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockCartUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

func testMenuItem(t *testing.T) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(
		kernel.NewUUID(), "Greek Salad", kernel.MustMoneyFromString("12.50"), false, kernel.NewUUID())
	require.NoError(t, err)
	return item
}

func TestAddItemToCartCommandHandler_Handle_NewLine(t *testing.T) {
	ctx := t.Context()
	actor, _ := account.NewActor(kernel.NewUUID(), account.RoleCustomer)
	cmd, _ := commands.NewAddItemToCartCommand(actor, "Greek Salad", 2)
	item := testMenuItem(t)

	cartRepo := new(MockCartLineRepository)
	menuRepo := new(MockCartMenuItemRepository)
	uow := new(MockCartUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByTitle", ctx, "Greek Salad").Return(item, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetLineForUpdate", ctx, actor.ID(), item.ID()).
			Return(nil, errs.NewObjectNotFoundError("cart line", item.ID())).
			Once(),
		cartRepo.On("Add", ctx, mock.AnythingOfType("*cart.Line")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemToCartCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.CartLineCreated, result)

	addedLine := cartRepo.Calls[1].Arguments[1].(*cart.Line)
	assert.Equal(t, 2, addedLine.Quantity())
	assert.True(t, addedLine.UnitPrice().IsEqual(item.Price()))

	cartRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemToCartCommandHandler_Handle_MergesExistingLine(t *testing.T) {
	ctx := t.Context()
	actor, _ := account.NewActor(kernel.NewUUID(), account.RoleCustomer)
	cmd, _ := commands.NewAddItemToCartCommand(actor, "Greek Salad", 2)
	item := testMenuItem(t)

	existing, err := cart.NewLine(actor.ID(), item.ID(), 3, item.Price(), time.Now())
	require.NoError(t, err)

	cartRepo := new(MockCartLineRepository)
	menuRepo := new(MockCartMenuItemRepository)
	uow := new(MockCartUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByTitle", ctx, "Greek Salad").Return(item, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetLineForUpdate", ctx, actor.ID(), item.ID()).Return(existing, nil).Once(),
		cartRepo.On("Update", ctx, mock.AnythingOfType("*cart.Line")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemToCartCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.CartLineMerged, result)

	mergedLine := cartRepo.Calls[1].Arguments[1].(*cart.Line)
	assert.Equal(t, 5, mergedLine.Quantity())
	assert.True(t, mergedLine.UnitPrice().IsEqual(item.Price()))

	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddItemToCartCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddItemToCartCommand{} // not constructed properly

	factory := new(MockCartUoWFactory)
	handler := commands.NewAddItemToCartCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddItemToCartCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAddItemToCartCommandHandler_Handle_NonCustomerDenied(t *testing.T) {
	ctx := t.Context()

	for _, role := range []account.Role{account.RoleManager, account.RoleDeliveryCrew} {
		actor, _ := account.NewActor(kernel.NewUUID(), role)
		cmd, _ := commands.NewAddItemToCartCommand(actor, "Greek Salad", 2)

		factory := new(MockCartUoWFactory)
		handler := commands.NewAddItemToCartCommandHandler(factory)
		_, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		factory.AssertNotCalled(t, "Create")
	}
}

func TestAddItemToCartCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	actor, _ := account.NewActor(kernel.NewUUID(), account.RoleCustomer)
	cmd, _ := commands.NewAddItemToCartCommand(actor, "Greek Salad", 2)

	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewAddItemToCartCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestAddItemToCartCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	actor, _ := account.NewActor(kernel.NewUUID(), account.RoleCustomer)
	cmd, _ := commands.NewAddItemToCartCommand(actor, "Unknown Dish", 1)

	menuRepo := new(MockCartMenuItemRepository)
	uow := new(MockCartUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByTitle", ctx, "Unknown Dish").
			Return(nil, errs.NewObjectNotFoundError("title", "Unknown Dish")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemToCartCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddItemToCartCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	actor, _ := account.NewActor(kernel.NewUUID(), account.RoleCustomer)
	cmd, _ := commands.NewAddItemToCartCommand(actor, "Greek Salad", 2)
	item := testMenuItem(t)

	cartRepo := new(MockCartLineRepository)
	menuRepo := new(MockCartMenuItemRepository)
	uow := new(MockCartUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByTitle", ctx, "Greek Salad").Return(item, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetLineForUpdate", ctx, actor.ID(), item.ID()).
			Return(nil, errs.NewObjectNotFoundError("cart line", item.ID())).
			Once(),
		cartRepo.On("Add", ctx, mock.AnythingOfType("*cart.Line")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemToCartCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	assert.Equal(t, commands.CartAddResultUnknown, result)
}
