package accounts

import (
	"context"

	"github.com/herafy/herafy/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/herafy/herafy/services/accounts AccountUC

// AccountUC represents the account usecase interface consumed by
// controllers and other services
type AccountUC interface {
	// registration and lookup
	Register(ctx context.Context, req *models.RegisterAccountRequest) (*models.Account, error)
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByPhone(ctx context.Context, phone string) (*models.Account, error)

	// profile and lifecycle
	UpdateProfile(ctx context.Context, id string, fullName, profilePicture string) (*models.Account, error)
	SetAccountStatus(ctx context.Context, id string, isActive bool) (*models.Account, error)
	UpdateLocation(ctx context.Context, id string, req *models.UpdateLocationRequest) (*models.Account, error)
	DeleteAccount(ctx context.Context, id string) (*models.Account, error)

	// proximity search
	FindNearbyAccounts(ctx context.Context, longitude, latitude, radiusMeters float64) ([]models.Account, error)
}
