package postgres_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (s *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &productrepo.ProductDTO{}, &userrepo.UserDTO{})
	s.Require().NoError(err)

	s.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (s *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *UnitOfWorkIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("DELETE FROM orders").Error)
	s.Require().NoError(s.db.Exec("DELETE FROM products").Error)
	s.Require().NoError(s.db.Exec("DELETE FROM users").Error)
}

func (s *UnitOfWorkIntegrationTestSuite) seedProduct(stock int) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Clay Teapot", 10000, stock)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.ProductRepository().Add(context.Background(), p))
	return p
}

func (s *UnitOfWorkIntegrationTestSuite) newOrderFor(p *product.Product) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), p.SellerID(), p.ID(),
		p.Price(), 1500, 1000, time.Now().UTC(),
	)
	s.Require().NoError(err)
	return o
}

func (s *UnitOfWorkIntegrationTestSuite) TestCommitPersistsOrderAndStockTogether() {
	ctx := context.Background()
	p := s.seedProduct(1)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))

	s.Require().NoError(uow.ProductRepository().DecrementStock(ctx, p.ID(), 1))
	o := s.newOrderFor(p)
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))

	check := s.factory.Create()
	got, err := check.OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Assert().Equal(order.Pending, got.Status())

	gotProduct, err := check.ProductRepository().Get(ctx, p.ID())
	s.Require().NoError(err)
	s.Assert().Equal(0, gotProduct.Stock())
}

func (s *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsBothWrites() {
	ctx := context.Background()
	p := s.seedProduct(1)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))

	s.Require().NoError(uow.ProductRepository().DecrementStock(ctx, p.ID(), 1))
	o := s.newOrderFor(p)
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Rollback(ctx))

	check := s.factory.Create()
	_, err := check.OrderRepository().Get(ctx, o.ID())
	s.Assert().ErrorIs(err, errs.ErrObjectNotFound)

	gotProduct, err := check.ProductRepository().Get(ctx, p.ID())
	s.Require().NoError(err)
	s.Assert().Equal(1, gotProduct.Stock())
}

func (s *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommitIsNoOp() {
	ctx := context.Background()
	p := s.seedProduct(1)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))

	o := s.newOrderFor(p)
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))
	s.Require().NoError(uow.Rollback(ctx))

	check := s.factory.Create()
	_, err := check.OrderRepository().Get(ctx, o.ID())
	s.Assert().NoError(err)
}

func (s *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin() {
	uow := s.factory.Create()
	err := uow.Commit(context.Background())
	s.Require().Error(err)
	s.Assert().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
