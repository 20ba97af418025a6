package userrepo_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/postgres/userrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
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

// UserRepositoryIntegrationTestSuite provides integration tests for
// GormUserRepository using PostgreSQL containers.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) createTestUser(email string) *user.User {
	aggregate, err := user.NewUser(kernel.NewUUID(), email, "Ada", "Lovelace", "+1 555-123-4567")
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddGet_RoundTrip_PreservesAggregate() {
	ctx := context.Background()
	testUser := suite.createTestUser("ada@example.com")

	suite.tracker.On("TrackAggregate", testUser.ID(), testUser).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testUser))

	restored, err := suite.repository.Get(ctx, testUser.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(testUser))
	suite.Equal("ada@example.com", restored.Email())
	suite.Equal("Ada", restored.FirstName())
	suite.Equal("Lovelace", restored.LastName())
	suite.Equal("+1 555-123-4567", restored.Phone())
	suite.True(restored.IsActive())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_NonExistentUser_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_Deactivation_Persists() {
	ctx := context.Background()
	testUser := suite.createTestUser("ada@example.com")

	suite.tracker.On("TrackAggregate", testUser.ID(), testUser)
	suite.Require().NoError(suite.repository.Add(ctx, testUser))

	suite.Require().NoError(testUser.Deactivate())
	suite.Require().NoError(suite.repository.Update(ctx, testUser))

	restored, err := suite.repository.Get(ctx, testUser.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsActive())
}

func (suite *UserRepositoryIntegrationTestSuite) TestExistsByEmail() {
	ctx := context.Background()
	testUser := suite.createTestUser("ada@example.com")

	suite.tracker.On("TrackAggregate", testUser.ID(), testUser)
	suite.Require().NoError(suite.repository.Add(ctx, testUser))

	exists, err := suite.repository.ExistsByEmail(ctx, "ada@example.com")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByEmail(ctx, "grace@example.com")
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
