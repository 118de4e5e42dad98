package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (s *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	s.Require().NoError(err)

	s.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (s *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *OrderRepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("DELETE FROM orders").Error)
}

func (s *OrderRepositoryIntegrationTestSuite) newPendingOrder() *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		10000, 1500, 1000, time.Now().UTC(),
	)
	s.Require().NoError(err)
	return o
}

func (s *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := s.newPendingOrder()
	s.Require().NoError(s.repo.Add(ctx, o))

	got, err := s.repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Assert().True(got.ID().IsEqual(o.ID()))
	s.Assert().True(got.BuyerID().IsEqual(o.BuyerID()))
	s.Assert().Equal(order.Pending, got.Status())
	s.Assert().Nil(got.Rider())
	s.Assert().Equal(int64(10000), got.Price())
	s.Assert().Equal(int64(1500), got.DeliveryFee())
	s.Assert().Equal(int64(1000), got.Commission())
	s.Assert().Equal(int64(11500), got.TotalAmount())
}

func (s *OrderRepositoryIntegrationTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(context.Background(), kernel.NewUUID())
	s.Require().Error(err)
	s.Assert().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *OrderRepositoryIntegrationTestSuite) TestClaimAssignsRiderAndTransitions() {
	ctx := context.Background()
	o := s.newPendingOrder()
	s.Require().NoError(s.repo.Add(ctx, o))

	riderID := kernel.NewUUID()
	claimed, err := s.repo.Claim(ctx, o.ID(), riderID)
	s.Require().NoError(err)
	s.Assert().Equal(order.InTransit, claimed.Status())
	s.Require().NotNil(claimed.Rider())
	s.Assert().True(claimed.Rider().IsEqual(riderID))
}

func (s *OrderRepositoryIntegrationTestSuite) TestClaimTwiceConflicts() {
	ctx := context.Background()
	o := s.newPendingOrder()
	s.Require().NoError(s.repo.Add(ctx, o))

	riderID := kernel.NewUUID()
	_, err := s.repo.Claim(ctx, o.ID(), riderID)
	s.Require().NoError(err)

	// A second claim conflicts, including a retry by the winning rider.
	_, err = s.repo.Claim(ctx, o.ID(), kernel.NewUUID())
	s.Assert().ErrorIs(err, errs.ErrConflict)

	_, err = s.repo.Claim(ctx, o.ID(), riderID)
	s.Assert().ErrorIs(err, errs.ErrConflict)
}

func (s *OrderRepositoryIntegrationTestSuite) TestClaimMissingOrder() {
	_, err := s.repo.Claim(context.Background(), kernel.NewUUID(), kernel.NewUUID())
	s.Require().Error(err)
	s.Assert().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *OrderRepositoryIntegrationTestSuite) TestConcurrentClaimsExactlyOneWinner() {
	ctx := context.Background()
	o := s.newPendingOrder()
	s.Require().NoError(s.repo.Add(ctx, o))

	const riders = 16

	var wg sync.WaitGroup
	results := make([]error, riders)

	for i := range riders {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, results[n] = s.repo.Claim(ctx, o.ID(), kernel.NewUUID())
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			s.Assert().ErrorIs(err, errs.ErrConflict)
		}
	}
	s.Assert().Equal(1, winners)

	got, err := s.repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Assert().Equal(order.InTransit, got.Status())
	s.Assert().NotNil(got.Rider())
}

func (s *OrderRepositoryIntegrationTestSuite) TestUpdateConditionedOnStatus() {
	ctx := context.Background()
	o := s.newPendingOrder()
	s.Require().NoError(s.repo.Add(ctx, o))

	claimed, err := s.repo.Claim(ctx, o.ID(), kernel.NewUUID())
	s.Require().NoError(err)

	s.Require().NoError(claimed.Complete())
	s.Require().NoError(s.repo.Update(ctx, claimed, order.InTransit))

	// Replaying the same transition fails: the row is no longer InTransit.
	err = s.repo.Update(ctx, claimed, order.InTransit)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, errs.ErrConflict)

	got, err := s.repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Assert().Equal(order.Delivered, got.Status())
}

func (s *OrderRepositoryIntegrationTestSuite) TestUpdateMissingOrder() {
	ctx := context.Background()
	o := s.newPendingOrder()
	s.Require().NoError(o.Cancel())

	err := s.repo.Update(ctx, o, order.Pending)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *OrderRepositoryIntegrationTestSuite) TestCancelRaceWithClaim() {
	ctx := context.Background()
	o := s.newPendingOrder()
	s.Require().NoError(s.repo.Add(ctx, o))

	_, err := s.repo.Claim(ctx, o.ID(), kernel.NewUUID())
	s.Require().NoError(err)

	// Cancellation keyed on Pending loses to the committed claim.
	s.Require().NoError(o.Cancel())
	err = s.repo.Update(ctx, o, order.Pending)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, errs.ErrConflict)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
