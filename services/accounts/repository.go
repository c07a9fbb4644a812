package accounts

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/herafy/herafy/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/herafy/herafy/services/accounts AccountRepo

// AccountRepo defines the interface for account data access operations
type AccountRepo interface {
	// CRUD operations
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)
	FindAccounts(ctx context.Context, filter bson.M, projection bson.M) ([]models.Account, error)
	FindAccountByID(ctx context.Context, id primitive.ObjectID, projection bson.M) (*models.Account, error)
	FindAccountByEmail(ctx context.Context, email string, projection bson.M) (*models.Account, error)
	FindAccountByPhone(ctx context.Context, phone string, projection bson.M) (*models.Account, error)
	DeleteAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)

	// Check operations
	AccountExists(ctx context.Context, email, phone string) (bool, error)

	// Filtered finders
	FindActiveAccounts(ctx context.Context, filter bson.M, projection bson.M) ([]models.Account, error)
	FindAccountsNearLocation(ctx context.Context, longitude, latitude, maxDistanceMeters float64, filter bson.M) ([]models.Account, error)

	// Mutators
	UpdateAccountProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Account, error)
	UpdateAccountStatus(ctx context.Context, id primitive.ObjectID, isActive bool) (*models.Account, error)
	UpdateAccountLocation(ctx context.Context, id primitive.ObjectID, loc *models.UpdateLocationRequest) (*models.Account, error)
}
