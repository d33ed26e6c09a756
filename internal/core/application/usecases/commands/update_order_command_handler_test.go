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
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPatchOrderRepository struct{ mock.Mock }

func (m *MockPatchOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}

func (m *MockPatchOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockPatchOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockPatchOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPatchAccountRepository struct{ mock.Mock }

func (m *MockPatchAccountRepository) Add(_ context.Context, _ *account.Account) error {
	return errors.New("not implemented in mock")
}

func (m *MockPatchAccountRepository) Update(_ context.Context, _ *account.Account) error {
	return errors.New("not implemented in mock")
}

func (m *MockPatchAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockPatchAccountRepository) GetByUsername(_ context.Context, _ string) (*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockPatchAccountRepository) GetAllInGroup(
	_ context.Context, _ account.GroupName,
) ([]*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPatchUoW struct{ mock.Mock }

func (m *MockPatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPatchUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockPatchUoWFactory struct{ mock.Mock }

func (m *MockPatchUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func testOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	line, err := cart.NewLine(customerID, kernel.NewUUID(), 2, kernel.MustMoneyFromString("12.50"), time.Now())
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []*cart.Line{line}, time.Now())
	require.NoError(t, err)
	return o
}

func statusPtr(s order.Status) *order.Status { return &s }

func TestUpdateOrderCommandHandler_Handle_ManagerAssignsCrew(t *testing.T) {
	ctx := t.Context()
	manager, _ := account.NewActor(kernel.NewUUID(), account.RoleManager)
	customerID := kernel.NewUUID()
	testOrd := testOrder(t, customerID)

	crewID := kernel.NewUUID()
	crewAccount, err := account.RestoreAccount(crewID, "crew1", false,
		[]account.GroupName{account.GroupDeliveryCrew})
	require.NoError(t, err)

	cmd, err := commands.NewUpdateOrderCommand(manager, testOrd.ID(), nil, &crewID, false)
	require.NoError(t, err)

	orderRepo := new(MockPatchOrderRepository)
	accountRepo := new(MockPatchAccountRepository)
	uow := new(MockPatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, crewID).Return(crewAccount, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updated := orderRepo.Calls[1].Arguments[1].(*order.Order)
	require.NotNil(t, updated.DeliveryCrew())
	assert.Equal(t, crewID, *updated.DeliveryCrew())

	orderRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_AssigneeNotCrew(t *testing.T) {
	ctx := t.Context()
	manager, _ := account.NewActor(kernel.NewUUID(), account.RoleManager)
	customerID := kernel.NewUUID()
	testOrd := testOrder(t, customerID)

	assigneeID := kernel.NewUUID()
	plainAccount, err := account.NewAccount(assigneeID, "plain", false)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateOrderCommand(manager, testOrd.ID(), nil, &assigneeID, false)
	require.NoError(t, err)

	orderRepo := new(MockPatchOrderRepository)
	accountRepo := new(MockPatchAccountRepository)
	uow := new(MockPatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, assigneeID).Return(plainAccount, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_CrewFlipsStatus(t *testing.T) {
	ctx := t.Context()
	crewID := kernel.NewUUID()
	crew, _ := account.NewActor(crewID, account.RoleDeliveryCrew)
	customerID := kernel.NewUUID()

	testOrd := testOrder(t, customerID)
	require.NoError(t, testOrd.AssignCrew(crewID))

	cmd, err := commands.NewUpdateOrderCommand(crew, testOrd.ID(), statusPtr(order.StatusDelivery), nil, false)
	require.NoError(t, err)

	orderRepo := new(MockPatchOrderRepository)
	uow := new(MockPatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updated := orderRepo.Calls[1].Arguments[1].(*order.Order)
	assert.Equal(t, order.StatusDelivery, updated.Status())
}

func TestUpdateOrderCommandHandler_Handle_CrewCannotTouchUnassignedOrder(t *testing.T) {
	ctx := t.Context()
	crew, _ := account.NewActor(kernel.NewUUID(), account.RoleDeliveryCrew)
	customerID := kernel.NewUUID()

	testOrd := testOrder(t, customerID)
	require.NoError(t, testOrd.AssignCrew(kernel.NewUUID())) // someone else

	cmd, err := commands.NewUpdateOrderCommand(crew, testOrd.ID(), statusPtr(order.StatusDelivery), nil, false)
	require.NoError(t, err)

	orderRepo := new(MockPatchOrderRepository)
	uow := new(MockPatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_CustomerCannotChangeStatus(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	customer, _ := account.NewActor(customerID, account.RoleCustomer)

	testOrd := testOrder(t, customerID)
	cmd, err := commands.NewUpdateOrderCommand(customer, testOrd.ID(), statusPtr(order.StatusDelivery), nil, false)
	require.NoError(t, err)

	orderRepo := new(MockPatchOrderRepository)
	uow := new(MockPatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestUpdateOrderCommandHandler_Handle_CustomerResubmitIsNoOp(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	customer, _ := account.NewActor(customerID, account.RoleCustomer)

	testOrd := testOrder(t, customerID)
	cmd, err := commands.NewUpdateOrderCommand(customer, testOrd.ID(), nil, nil, true)
	require.NoError(t, err)

	orderRepo := new(MockPatchOrderRepository)
	uow := new(MockPatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	manager, _ := account.NewActor(kernel.NewUUID(), account.RoleManager)
	orderID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderCommand(manager, orderID, statusPtr(order.StatusDelivery), nil, false)
	require.NoError(t, err)

	orderRepo := new(MockPatchOrderRepository)
	uow := new(MockPatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderCommand{} // not constructed properly

	factory := new(MockPatchUoWFactory)
	handler := commands.NewUpdateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
