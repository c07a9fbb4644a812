package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/herafy/herafy/internal/pkg/errors"
	"github.com/herafy/herafy/internal/pkg/models"
	"github.com/herafy/herafy/services/technicians/mocks"
)

func newTestTechnicianUC(t *testing.T) (*TechnicianUC, *mocks.MockTechnicianRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTechnicianRepo(ctrl)
	uc := NewTechnicianUC(repo, &models.Config{
		Search: models.SearchConfig{DefaultRadiusMeters: 3000},
	})
	return uc, repo, ctrl
}

func TestTechnicianRegister(t *testing.T) {
	validReq := func() *models.RegisterTechnicianRequest {
		return &models.RegisterTechnicianRequest{
			Email:             "Plumber@Example.com",
			Phone:             "+201234567890",
			Password:          "s3cret-pass",
			FullName:          "Test Plumber",
			ServiceCategories: []string{"plumbing"},
			YearsOfExperience: 5,
		}
	}

	t.Run("success registers pending and available", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		repo.EXPECT().
			TechnicianExists(gomock.Any(), "plumber@example.com", "+201234567890").
			Return(false, nil)
		repo.EXPECT().
			CreateTechnician(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, technician *models.Technician) (*models.Technician, error) {
				assert.Equal(t, "plumber@example.com", technician.Email)
				assert.Equal(t, models.VerificationPending, technician.VerificationStatus)
				assert.True(t, technician.IsAvailable)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(technician.Password), []byte("s3cret-pass")))

				technician.ID = primitive.NewObjectID()
				return technician, nil
			})

		created, err := uc.Register(context.Background(), validReq())
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.False(t, created.ID.IsZero())
	})

	t.Run("validation failures never reach the repository", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.RegisterTechnicianRequest)
		}{
			{
				name:   "invalid email",
				mutate: func(r *models.RegisterTechnicianRequest) { r.Email = "not-an-email" },
			},
			{
				name:   "invalid phone",
				mutate: func(r *models.RegisterTechnicianRequest) { r.Phone = "123" },
			},
			{
				name:   "no service categories",
				mutate: func(r *models.RegisterTechnicianRequest) { r.ServiceCategories = nil },
			},
			{
				name:   "negative experience",
				mutate: func(r *models.RegisterTechnicianRequest) { r.YearsOfExperience = -1 },
			},
			{
				name:   "oversized bio",
				mutate: func(r *models.RegisterTechnicianRequest) { r.Bio = strings.Repeat("x", maxBioLength+1) },
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc, _, ctrl := newTestTechnicianUC(t)
				defer ctrl.Finish()

				req := validReq()
				tt.mutate(req)

				created, err := uc.Register(context.Background(), req)
				require.Error(t, err)
				assert.Nil(t, created)
				assert.True(t, apperrors.Is(err, apperrors.CodeInvalidArgument))
			})
		}
	})

	t.Run("taken email or phone is rejected before create", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		repo.EXPECT().
			TechnicianExists(gomock.Any(), "plumber@example.com", "+201234567890").
			Return(true, nil)

		created, err := uc.Register(context.Background(), validReq())
		require.Error(t, err)
		assert.Nil(t, created)
		assert.True(t, apperrors.Is(err, apperrors.CodeConstraintViolation))
	})
}

func TestTechnicianUpdateProfile(t *testing.T) {
	t.Run("allowed fields pass through", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		repo.EXPECT().
			UpdateTechnicianProfile(gomock.Any(), id, bson.M{"bio": "experienced plumber"}).
			Return(&models.Technician{ID: id, Bio: "experienced plumber"}, nil)

		technician, err := uc.UpdateProfile(context.Background(), id.Hex(),
			map[string]interface{}{"bio": "experienced plumber"})
		require.NoError(t, err)
		require.NotNil(t, technician)
		assert.Equal(t, "experienced plumber", technician.Bio)
	})

	t.Run("immutable field is rejected", func(t *testing.T) {
		uc, _, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		technician, err := uc.UpdateProfile(context.Background(), primitive.NewObjectID().Hex(),
			map[string]interface{}{"averageRating": 5.0})
		require.Error(t, err)
		assert.Nil(t, technician)
		assert.True(t, apperrors.Is(err, apperrors.CodeInvalidArgument))
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		uc, _, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		technician, err := uc.UpdateProfile(context.Background(), primitive.NewObjectID().Hex(), nil)
		require.Error(t, err)
		assert.Nil(t, technician)
		assert.True(t, apperrors.Is(err, apperrors.CodeInvalidArgument))
	})
}

func TestVerificationTransitions(t *testing.T) {
	statusProjection := bson.M{"verificationStatus": 1}

	t.Run("pending technician can be approved", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		repo.EXPECT().
			FindTechnicianByID(gomock.Any(), id, statusProjection).
			Return(&models.Technician{ID: id, VerificationStatus: models.VerificationPending}, nil)
		repo.EXPECT().
			UpdateVerificationStatus(gomock.Any(), id, models.VerificationApproved).
			Return(&models.Technician{
				ID:                 id,
				VerificationStatus: models.VerificationApproved,
				IsVerified:         true,
			}, nil)

		technician, err := uc.ApproveTechnician(context.Background(), id.Hex())
		require.NoError(t, err)
		require.NotNil(t, technician)
		assert.True(t, technician.IsVerified)
	})

	t.Run("pending technician can be rejected", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		repo.EXPECT().
			FindTechnicianByID(gomock.Any(), id, statusProjection).
			Return(&models.Technician{ID: id, VerificationStatus: models.VerificationPending}, nil)
		repo.EXPECT().
			UpdateVerificationStatus(gomock.Any(), id, models.VerificationRejected).
			Return(&models.Technician{
				ID:                 id,
				VerificationStatus: models.VerificationRejected,
			}, nil)

		technician, err := uc.RejectTechnician(context.Background(), id.Hex())
		require.NoError(t, err)
		require.NotNil(t, technician)
		assert.False(t, technician.IsVerified)
	})

	t.Run("approved is terminal", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		repo.EXPECT().
			FindTechnicianByID(gomock.Any(), id, statusProjection).
			Return(&models.Technician{ID: id, VerificationStatus: models.VerificationApproved}, nil)

		technician, err := uc.RejectTechnician(context.Background(), id.Hex())
		require.Error(t, err)
		assert.Nil(t, technician)
		assert.True(t, apperrors.Is(err, apperrors.CodeInvalidArgument))
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		repo.EXPECT().
			FindTechnicianByID(gomock.Any(), id, statusProjection).
			Return(&models.Technician{ID: id, VerificationStatus: models.VerificationRejected}, nil)

		technician, err := uc.ApproveTechnician(context.Background(), id.Hex())
		require.Error(t, err)
		assert.Nil(t, technician)
		assert.True(t, apperrors.Is(err, apperrors.CodeInvalidArgument))
	})

	t.Run("missing technician returns nil without error", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		repo.EXPECT().
			FindTechnicianByID(gomock.Any(), id, statusProjection).
			Return(nil, nil)

		technician, err := uc.ApproveTechnician(context.Background(), id.Hex())
		require.NoError(t, err)
		assert.Nil(t, technician)
	})
}

func TestSubmitRating(t *testing.T) {
	t.Run("valid rating is applied", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		repo.EXPECT().
			ApplyRating(gomock.Any(), id, float64(5)).
			Return(&models.Technician{
				ID:            id,
				TotalOrders:   1,
				TotalRating:   5,
				AverageRating: 5,
			}, nil)

		technician, err := uc.SubmitRating(context.Background(), id.Hex(), 5)
		require.NoError(t, err)
		require.NotNil(t, technician)
		assert.Equal(t, 5.0, technician.AverageRating)
	})

	t.Run("out-of-range ratings never reach the repository", func(t *testing.T) {
		for _, value := range []float64{0, 0.5, 5.5, 6, -1} {
			uc, _, ctrl := newTestTechnicianUC(t)

			technician, err := uc.SubmitRating(context.Background(), primitive.NewObjectID().Hex(), value)
			require.Error(t, err, "rating %v should be rejected", value)
			assert.Nil(t, technician)
			assert.True(t, apperrors.Is(err, apperrors.CodeInvalidArgument))

			ctrl.Finish()
		}
	})
}

func TestFindNearbyTechnicians(t *testing.T) {
	t.Run("zero radius falls back to the configured default", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		repo.EXPECT().
			FindAvailableTechniciansNear(gomock.Any(), 31.2357, 30.0444, float64(3000)).
			Return([]models.Technician{}, nil)

		technicians, err := uc.FindNearbyTechnicians(context.Background(), 31.2357, 30.0444, 0)
		require.NoError(t, err)
		assert.Empty(t, technicians)
	})

	t.Run("explicit radius is passed through", func(t *testing.T) {
		uc, repo, ctrl := newTestTechnicianUC(t)
		defer ctrl.Finish()

		repo.EXPECT().
			FindAvailableTechniciansNear(gomock.Any(), 31.2357, 30.0444, float64(750)).
			Return([]models.Technician{{ID: primitive.NewObjectID()}}, nil)

		technicians, err := uc.FindNearbyTechnicians(context.Background(), 31.2357, 30.0444, 750)
		require.NoError(t, err)
		assert.Len(t, technicians, 1)
	})
}

func TestSetAvailability(t *testing.T) {
	uc, repo, ctrl := newTestTechnicianUC(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	repo.EXPECT().
		UpdateTechnicianAvailability(gomock.Any(), id, true).
		Return(&models.Technician{ID: id, IsAvailable: true}, nil)

	technician, err := uc.SetAvailability(context.Background(), id.Hex(), true)
	require.NoError(t, err)
	require.NotNil(t, technician)
	assert.True(t, technician.IsAvailable)
}
