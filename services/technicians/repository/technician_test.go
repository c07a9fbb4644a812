package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "github.com/herafy/herafy/internal/pkg/errors"
	"github.com/herafy/herafy/internal/pkg/models"
	"github.com/herafy/herafy/internal/pkg/repository"
)

// newTestTechnicianRepo binds the repository to the mock collection with
// the geo cache disabled.
func newTestTechnicianRepo(mt *mtest.T) *TechnicianRepo {
	return &TechnicianRepo{
		BaseRepository: repository.NewBaseRepository[models.Technician](mt.Coll),
		cfg:            &models.Config{},
	}
}

func namespace(mt *mtest.T) string {
	return fmt.Sprintf("%s.%s", mt.DB.Name(), mt.Coll.Name())
}

func TestCreateTechnician(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns registration defaults", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := newTestTechnicianRepo(mt)
		technician := &models.Technician{
			Email:             " Plumber@Example.COM ",
			Phone:             "+201234567890",
			FullName:          "Test Plumber",
			ServiceCategories: []string{"plumbing"},
			AverageRating:     4.9,
			TotalRating:       99,
			TotalOrders:       20,
		}

		created, err := repo.CreateTechnician(context.Background(), technician)
		require.NoError(mt, err)
		require.NotNil(mt, created)
		assert.False(mt, created.ID.IsZero())
		assert.Equal(mt, "plumber@example.com", created.Email)
		assert.Equal(mt, models.VerificationPending, created.VerificationStatus)
		assert.False(mt, created.IsVerified)
		assert.Equal(mt, models.UnsetLocation(), created.Location)

		// counters never carry over from the request
		assert.Zero(mt, created.AverageRating)
		assert.Zero(mt, created.TotalRating)
		assert.Zero(mt, created.TotalOrders)
	})

	mt.Run("duplicate phone surfaces as constraint violation", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: technicians index: phone_1",
		}))

		repo := newTestTechnicianRepo(mt)

		created, err := repo.CreateTechnician(context.Background(), &models.Technician{
			Email: "new@example.com",
			Phone: "+201234567890",
		})
		require.Error(mt, err)
		assert.Nil(mt, created)
		assert.True(mt, apperrors.Is(err, apperrors.CodeConstraintViolation))
	})
}

func TestTechnicianExists(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("true when email or phone is taken", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "n", Value: 1}}))

		repo := newTestTechnicianRepo(mt)

		exists, err := repo.TechnicianExists(context.Background(), "taken@example.com", "+201234567890")
		require.NoError(mt, err)
		assert.True(mt, exists)
	})

	mt.Run("false when neither is taken", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		repo := newTestTechnicianRepo(mt)

		exists, err := repo.TechnicianExists(context.Background(), "free@example.com", "+201234567899")
		require.NoError(mt, err)
		assert.False(mt, exists)
	})
}

func TestUpdateVerificationStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("approval flips the verified flag", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "verificationStatus", Value: models.VerificationApproved},
			{Key: "isVerified", Value: true},
		}}))

		repo := newTestTechnicianRepo(mt)

		technician, err := repo.UpdateVerificationStatus(context.Background(), id, models.VerificationApproved)
		require.NoError(mt, err)
		require.NotNil(mt, technician)
		assert.Equal(mt, models.VerificationApproved, technician.VerificationStatus)
		assert.True(mt, technician.IsVerified)
	})

	mt.Run("missing technician returns nil without error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		repo := newTestTechnicianRepo(mt)

		technician, err := repo.UpdateVerificationStatus(context.Background(), primitive.NewObjectID(), models.VerificationRejected)
		require.NoError(mt, err)
		assert.Nil(mt, technician)
	})
}

func TestUpdateTechnicianLocationValidation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("out-of-range coordinates never reach the store", func(mt *mtest.T) {
		repo := newTestTechnicianRepo(mt)

		technician, err := repo.UpdateTechnicianLocation(context.Background(), primitive.NewObjectID(),
			&models.UpdateLocationRequest{Longitude: 31.2357, Latitude: 120})
		require.Error(mt, err)
		assert.Nil(mt, technician)
		assert.True(mt, apperrors.Is(err, apperrors.CodeInvalidArgument))
	})
}

func TestFindTechniciansNearLocationValidation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("bad radius never reaches the store", func(mt *mtest.T) {
		repo := newTestTechnicianRepo(mt)

		technicians, err := repo.FindTechniciansNearLocation(context.Background(), 31.2357, 30.0444, 0, nil)
		require.Error(mt, err)
		assert.Nil(mt, technicians)
		assert.True(mt, apperrors.Is(err, apperrors.CodeInvalidArgument))
	})
}
