package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Smeltier/basic-delivery-system/internal/adapters/out/postgres/restaurantrepo"
	"github.com/Smeltier/basic-delivery-system/internal/core/application/usecases/queries"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/restaurant"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandlerTestSuite provides integration tests for the
// restaurant menu read model using a PostgreSQL container.
type GetRestaurantMenuQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *restaurantrepo.GormRestaurantRepository
	handler    queries.GetRestaurantMenuQueryHandler
}

func (suite *GetRestaurantMenuQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
	))

	suite.repository = restaurantrepo.NewGormRestaurantRepository(db, noopTracker{})
	suite.handler = queries.NewGetRestaurantMenuQueryHandler(db)
}

func (suite *GetRestaurantMenuQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetRestaurantMenuQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE restaurants CASCADE").Error)
}

func (suite *GetRestaurantMenuQueryHandlerTestSuite) TestHandle_ExistingRestaurant_ReturnsMenu() {
	ctx := context.Background()

	seeded := suite.seedRestaurant()

	query, err := queries.NewGetRestaurantMenuQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID(), result.RestaurantID)
	suite.Equal("Cantina da Nona", result.Name)
	suite.Equal("BRL", result.Currency)
	suite.False(result.Open)

	suite.Require().Len(result.Items, 2)
	// Categories sort by numeric value, so MainCourse comes before Dessert
	suite.Equal("Margherita", result.Items[0].Name)
	suite.Equal("MainCourse", result.Items[0].Category)
	suite.True(result.Items[0].Active)
	suite.True(decimal.RequireFromString("49.90").Equal(result.Items[0].Price))
	suite.Equal("Tiramisu", result.Items[1].Name)
	suite.Equal("Dessert", result.Items[1].Category)
}

func (suite *GetRestaurantMenuQueryHandlerTestSuite) TestHandle_NonExistentRestaurant_ReturnsNotFoundError() {
	ctx := context.Background()

	query, err := queries.NewGetRestaurantMenuQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetRestaurantMenuQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetRestaurantMenuQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetRestaurantMenuQueryIsNotConstructed)
}

func (suite *GetRestaurantMenuQueryHandlerTestSuite) seedRestaurant() *restaurant.Restaurant {
	hours, err := restaurant.NewOpeningHours("11:30", "23:00")
	suite.Require().NoError(err)

	zip, err := kernel.NewZipCode("01310-100")
	suite.Require().NoError(err)
	addr, err := kernel.NewAddress("Avenida Paulista", "1578", "", "São Paulo", "Brasil", zip)
	suite.Require().NoError(err)

	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), kernel.NewUUID(), "Cantina da Nona", kernel.BRL, addr, hours)
	suite.Require().NoError(err)

	suite.Require().NoError(r.AddMenuItem(
		kernel.NewUUID(), "Margherita", "Tomato and basil",
		kernel.MainCourse, suite.brl("49.90")))
	suite.Require().NoError(r.AddMenuItem(
		kernel.NewUUID(), "Tiramisu", "Mascarpone and espresso",
		kernel.Dessert, suite.brl("24.00")))

	suite.Require().NoError(suite.repository.Add(context.Background(), r))
	return r
}

func (suite *GetRestaurantMenuQueryHandlerTestSuite) brl(amount string) kernel.Money {
	money, err := kernel.MoneyFromString(amount, kernel.BRL)
	suite.Require().NoError(err)
	return money
}

func TestGetRestaurantMenuQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetRestaurantMenuQueryHandlerTestSuite))
}
