package cartrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/cartrepo"
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CartRepositoryIntegrationTestSuite provides integration tests for CartRepository
// using PostgreSQL containers to verify database persistence behavior.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
	tracker    *MockAggregateTracker
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&cartrepo.LineDTO{}))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cart_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = cartrepo.NewGormCartRepository(suite.db, suite.tracker)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestAddAndGetLineForUpdate_RoundTrip() {
	ctx := context.Background()

	line := suite.createTestLine(2, "12.50")
	suite.tracker.On("TrackAggregate", line.CustomerID(), line).Once()

	suite.Require().NoError(suite.repository.Add(ctx, line))

	retrieved, err := suite.repository.GetLineForUpdate(ctx, line.CustomerID(), line.MenuItemID())
	suite.Require().NoError(err)

	suite.Equal(line.CustomerID(), retrieved.CustomerID())
	suite.Equal(line.MenuItemID(), retrieved.MenuItemID())
	suite.Equal(2, retrieved.Quantity())
	suite.True(line.UnitPrice().IsEqual(retrieved.UnitPrice()))
	suite.WithinDuration(line.AddedAt(), retrieved.AddedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetLineForUpdate_MissingLine_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetLineForUpdate(ctx, kernel.NewUUID(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdate_MergedLine_PersistsQuantityOnly() {
	ctx := context.Background()

	line := suite.createTestLine(2, "12.50")
	suite.tracker.On("TrackAggregate", line.CustomerID(), line).Once()
	suite.Require().NoError(suite.repository.Add(ctx, line))

	suite.Require().NoError(line.Merge(3))
	suite.tracker.On("TrackAggregate", line.CustomerID(), line).Once()
	suite.Require().NoError(suite.repository.Update(ctx, line))

	retrieved, err := suite.repository.GetLineForUpdate(ctx, line.CustomerID(), line.MenuItemID())
	suite.Require().NoError(err)
	suite.Equal(5, retrieved.Quantity())
	suite.True(line.UnitPrice().IsEqual(retrieved.UnitPrice()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdate_MissingLine_ReturnsError() {
	ctx := context.Background()

	line := suite.createTestLine(1, "9.99")

	err := suite.repository.Update(ctx, line)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetAllByCustomer_ReturnsOnlyOwnLines() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	otherCustomerID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	suite.addLineFor(ctx, customerID, 1, "5.00")
	suite.addLineFor(ctx, customerID, 2, "7.25")
	suite.addLineFor(ctx, otherCustomerID, 4, "3.10")

	lines, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Len(lines, 2)
	for _, line := range lines {
		suite.Equal(customerID, line.CustomerID())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestDeleteAllByCustomer_EmptiesOnlyThatCart() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	otherCustomerID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.addLineFor(ctx, customerID, 1, "5.00")
	suite.addLineFor(ctx, otherCustomerID, 2, "8.00")

	suite.Require().NoError(suite.repository.DeleteAllByCustomer(ctx, customerID))

	ownLines, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Empty(ownLines)

	otherLines, err := suite.repository.GetAllByCustomer(ctx, otherCustomerID)
	suite.Require().NoError(err)
	suite.Len(otherLines, 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestDeleteAllByCustomer_EmptyCart_Succeeds() {
	ctx := context.Background()

	err := suite.repository.DeleteAllByCustomer(ctx, kernel.NewUUID())
	suite.Require().NoError(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestDeleteOlderThan_PrunesOnlyStaleLines() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	staleLine, err := cart.NewLine(customerID, kernel.NewUUID(), 1,
		kernel.MustMoneyFromString("4.00"), time.Now().Add(-48*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, staleLine))

	freshLine, err := cart.NewLine(customerID, kernel.NewUUID(), 1,
		kernel.MustMoneyFromString("4.00"), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, freshLine))

	pruned, err := suite.repository.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), pruned)

	remaining, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Len(remaining, 1)
	suite.Equal(freshLine.MenuItemID(), remaining[0].MenuItemID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_RepeatPair_IncrementsQuantity() {
	ctx := context.Background()

	first := suite.createTestLine(2, "12.50")
	suite.tracker.On("TrackAggregate", first.CustomerID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := cart.NewLine(first.CustomerID(), first.MenuItemID(), 3,
		kernel.MustMoneyFromString("14.00"), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	retrieved, err := suite.repository.GetLineForUpdate(ctx, first.CustomerID(), first.MenuItemID())
	suite.Require().NoError(err)
	suite.Equal(5, retrieved.Quantity())
	suite.True(first.UnitPrice().IsEqual(retrieved.UnitPrice()))
	suite.WithinDuration(first.AddedAt(), retrieved.AddedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestConcurrentAdds_ExistingLine_QuantityIsSum() {
	ctx := context.Background()

	line := suite.createTestLine(1, "6.00")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, line))

	start := make(chan struct{})
	var wg sync.WaitGroup
	for _, quantity := range []int{2, 3} {
		wg.Add(1)
		go func(quantity int) {
			defer wg.Done()
			<-start

			err := suite.db.Transaction(func(tx *gorm.DB) error {
				repo := cartrepo.NewGormCartRepository(tx, suite.tracker)
				locked, lockErr := repo.GetLineForUpdate(ctx, line.CustomerID(), line.MenuItemID())
				if lockErr != nil {
					return lockErr
				}
				if mergeErr := locked.Merge(quantity); mergeErr != nil {
					return mergeErr
				}
				return repo.Update(ctx, locked)
			})
			suite.NoError(err)
		}(quantity)
	}
	close(start)
	wg.Wait()

	retrieved, err := suite.repository.GetLineForUpdate(ctx, line.CustomerID(), line.MenuItemID())
	suite.Require().NoError(err)
	suite.Equal(6, retrieved.Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestConcurrentFirstAdds_QuantityIsSum() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for _, quantity := range []int{2, 3} {
		wg.Add(1)
		go func(quantity int) {
			defer wg.Done()
			<-start

			err := suite.db.Transaction(func(tx *gorm.DB) error {
				repo := cartrepo.NewGormCartRepository(tx, suite.tracker)
				existing, lockErr := repo.GetLineForUpdate(ctx, customerID, menuItemID)
				switch {
				case lockErr == nil:
					if mergeErr := existing.Merge(quantity); mergeErr != nil {
						return mergeErr
					}
					return repo.Update(ctx, existing)
				case errors.Is(lockErr, errs.ErrObjectNotFound):
					fresh, lineErr := cart.NewLine(customerID, menuItemID, quantity,
						kernel.MustMoneyFromString("6.00"), time.Now())
					if lineErr != nil {
						return lineErr
					}
					return repo.Add(ctx, fresh)
				default:
					return lockErr
				}
			})
			suite.NoError(err)
		}(quantity)
	}
	close(start)
	wg.Wait()

	retrieved, err := suite.repository.GetLineForUpdate(ctx, customerID, menuItemID)
	suite.Require().NoError(err)
	suite.Equal(5, retrieved.Quantity())
}

// createTestLine creates a cart line for a fresh customer and menu item.
func (suite *CartRepositoryIntegrationTestSuite) createTestLine(quantity int, price string) *cart.Line {
	line, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), quantity,
		kernel.MustMoneyFromString(price), time.Now())
	suite.Require().NoError(err)
	return line
}

// addLineFor persists a new line for the given customer.
func (suite *CartRepositoryIntegrationTestSuite) addLineFor(
	ctx context.Context, customerID kernel.UUID, quantity int, price string,
) {
	line, err := cart.NewLine(customerID, kernel.NewUUID(), quantity,
		kernel.MustMoneyFromString(price), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, line))
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
