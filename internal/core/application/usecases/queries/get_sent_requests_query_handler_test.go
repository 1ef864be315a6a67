package queries_test

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/adapters/out/postgres/donationrepo"
	"foodbridge/internal/adapters/out/postgres/requestrepo"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetSentRequestsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetSentRequestsQueryHandler
}

func (suite *GetSentRequestsQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&donationrepo.DonationDTO{}, &requestrepo.RequestDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetSentRequestsQueryHandler(db)
}

func (suite *GetSentRequestsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetSentRequestsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE donations, requests").Error
	suite.Require().NoError(err)
}

func (suite *GetSentRequestsQueryHandlerTestSuite) TestHandle_NoRequests_ReturnsEmptySlice() {
	query, err := queries.NewGetSentRequestsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetSentRequestsQueryHandlerTestSuite) TestHandle_ReturnsOnlyReceiversRequestsWithDonationSummary() {
	receiverID := kernel.NewUUID()

	d := suite.saveDonation("Fresh bread", donation.BakedGoods)
	r := suite.saveRequest(d, receiverID, "Can I pick these up today?")

	// Another receiver's request must not appear.
	suite.saveRequest(d, kernel.NewUUID(), "")

	query, err := queries.NewGetSentRequestsQuery(receiverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	view := result[0]
	suite.Equal(r.ID(), view.ID)
	suite.Equal(d.ID(), view.DonationID)
	suite.Equal(receiverID, view.ReceiverID)
	suite.Equal("Can I pick these up today?", view.Message)
	suite.Equal("Pending", view.Status)
	suite.Nil(view.DeliveryPersonID)
	suite.Nil(view.RespondedAt)

	suite.Equal("Fresh bread", view.Donation.Title)
	suite.Equal("Baked Goods", view.Donation.FoodType)
	suite.Equal("10 loaves", view.Donation.Quantity)
	suite.Equal("12 Main St", view.Donation.PickupLocation)
	suite.Equal("Available", view.Donation.Status)
}

func (suite *GetSentRequestsQueryHandlerTestSuite) TestHandle_MapsApprovedLifecycleFields() {
	receiverID := kernel.NewUUID()
	d := suite.saveDonation("Vegetable soup", donation.CookedMeal)
	r := suite.saveRequest(d, receiverID, "")

	driverID := kernel.NewUUID()
	suite.Require().NoError(r.Approve(&driverID))
	repo := requestrepo.NewGormRequestRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Update(context.Background(), r))

	query, err := queries.NewGetSentRequestsQuery(receiverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	view := result[0]
	suite.Equal("Approved", view.Status)
	suite.Require().NotNil(view.DeliveryPersonID)
	suite.True(view.DeliveryPersonID.IsEqual(driverID))
	suite.NotNil(view.RespondedAt)
}

func (suite *GetSentRequestsQueryHandlerTestSuite) TestHandle_NewestFirst() {
	receiverID := kernel.NewUUID()
	older := suite.saveRequestAt(receiverID, time.Now().UTC().Add(-2*time.Hour))
	newer := suite.saveRequestAt(receiverID, time.Now().UTC().Add(-1*time.Hour))

	query, err := queries.NewGetSentRequestsQuery(receiverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(older.ID(), result[1].ID)
}

func (suite *GetSentRequestsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetSentRequestsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetSentRequestsQuery constructor")
}

func (suite *GetSentRequestsQueryHandlerTestSuite) saveDonation(
	title string, foodType donation.FoodType,
) *donation.Donation {
	d, err := donation.NewDonation(
		kernel.NewUUID(),
		kernel.NewUUID(),
		title,
		"A description for "+title,
		foodType,
		"10 loaves",
		"12 Main St",
	)
	suite.Require().NoError(err)

	repo := donationrepo.NewGormDonationRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), d))
	return d
}

func (suite *GetSentRequestsQueryHandlerTestSuite) saveRequest(
	d *donation.Donation, receiverID kernel.UUID, message string,
) *request.Request {
	r, err := request.NewRequest(kernel.NewUUID(), d.ID(), receiverID, d.DonorID(), message)
	suite.Require().NoError(err)

	repo := requestrepo.NewGormRequestRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), r))
	return r
}

func (suite *GetSentRequestsQueryHandlerTestSuite) saveRequestAt(
	receiverID kernel.UUID, createdAt time.Time,
) *request.Request {
	d := suite.saveDonation("Fresh bread", donation.BakedGoods)

	r, err := request.RestoreRequest(
		kernel.NewUUID(),
		d.ID(),
		receiverID,
		d.DonorID(),
		"",
		nil,
		request.Pending,
		nil,
		nil,
		createdAt,
	)
	suite.Require().NoError(err)

	repo := requestrepo.NewGormRequestRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), r))
	return r
}

func TestGetSentRequestsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSentRequestsQueryHandlerTestSuite))
}
