package commands_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductUoW struct{ mock.Mock }

func (m *MockProductUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(sellerID, user.RoleSeller, "Clay Teapot", 10000, 5)
	require.NoError(t, err)

	repo := new(MockPlaceProductRepository)
	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateProductCommandHandler(factory, testLogger())
	p, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, p.SellerID().IsEqual(sellerID))
	assert.Equal(t, "Clay Teapot", p.Name())
	assert.Equal(t, int64(10000), p.Price())
	assert.Equal(t, 5, p.Stock())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), user.RoleRider, "Clay Teapot", 10000, 5)
	require.NoError(t, err)

	factory := new(MockProductUoWFactory)
	h := commands.NewCreateProductCommandHandler(factory, testLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateProductCommand_InvalidPrice(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), user.RoleSeller, "Clay Teapot", 0, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateProductCommand_NegativeStock(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), user.RoleSeller, "Clay Teapot", 10000, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
