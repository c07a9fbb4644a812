package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/herafy/herafy/internal/pkg/constants"
	"github.com/herafy/herafy/internal/pkg/database"
	"github.com/herafy/herafy/internal/pkg/models"
	"github.com/herafy/herafy/internal/pkg/repository"
	"github.com/herafy/herafy/internal/utils"
)

// AccountRepo implements the account repository interface
type AccountRepo struct {
	*repository.BaseRepository[models.Account]
	cfg *models.Config
}

// NewAccountRepo creates a new account repository instance
func NewAccountRepo(cfg *models.Config, client *database.MongoClient) *AccountRepo {
	return &AccountRepo{
		BaseRepository: repository.NewBaseRepository[models.Account](
			client.Collection(constants.CollectionAccounts)),
		cfg: cfg,
	}
}

// CreateAccount inserts a new account document. Identity, defaults and
// timestamps are assigned here; a duplicate email or phone surfaces as
// CONSTRAINT_VIOLATION from the unique indexes.
func (r *AccountRepo) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	account.Email = utils.NormalizeEmail(account.Email)
	if account.Role == "" {
		account.Role = models.RoleCustomer
	}
	if len(account.Location.Coordinates) != 2 {
		account.Location = models.UnsetLocation()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	return r.Create(ctx, account)
}

// FindAccounts returns all accounts matching the filter
func (r *AccountRepo) FindAccounts(ctx context.Context, filter bson.M, projection bson.M) ([]models.Account, error) {
	return r.FindMany(ctx, filter, projection, nil)
}

// FindAccountByID retrieves an account by ID
func (r *AccountRepo) FindAccountByID(ctx context.Context, id primitive.ObjectID, projection bson.M) (*models.Account, error) {
	return r.FindOne(ctx, bson.M{"_id": id}, projection, nil)
}

// FindAccountByEmail retrieves an account by its normalized email
func (r *AccountRepo) FindAccountByEmail(ctx context.Context, email string, projection bson.M) (*models.Account, error) {
	return r.FindOne(ctx, bson.M{"email": utils.NormalizeEmail(email)}, projection, nil)
}

// FindAccountByPhone retrieves an account by phone number
func (r *AccountRepo) FindAccountByPhone(ctx context.Context, phone string, projection bson.M) (*models.Account, error) {
	return r.FindOne(ctx, bson.M{"phone": phone}, projection, nil)
}

// DeleteAccountByID removes an account for administrative use and
// returns the removed document
func (r *AccountRepo) DeleteAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	return r.DeleteByID(ctx, id)
}

// AccountExists reports whether any account already uses the email or
// the phone number. This is a pre-flight check; the unique indexes stay
// authoritative under races.
func (r *AccountRepo) AccountExists(ctx context.Context, email, phone string) (bool, error) {
	return r.Exists(ctx, bson.M{
		"$or": bson.A{
			bson.M{"email": utils.NormalizeEmail(email)},
			bson.M{"phone": phone},
		},
	})
}

// FindActiveAccounts merges the caller filter with isActive before
// delegating
func (r *AccountRepo) FindActiveAccounts(ctx context.Context, filter bson.M, projection bson.M) ([]models.Account, error) {
	merged := bson.M{"isActive": true}
	for k, v := range filter {
		merged[k] = v
	}
	return r.FindMany(ctx, merged, projection, nil)
}

// FindAccountsNearLocation returns accounts within maxDistanceMeters of
// the given point, nearest first
func (r *AccountRepo) FindAccountsNearLocation(ctx context.Context, longitude, latitude, maxDistanceMeters float64, filter bson.M) ([]models.Account, error) {
	if err := repository.ValidateNearArgs(longitude, latitude, maxDistanceMeters); err != nil {
		return nil, err
	}
	return r.FindMany(ctx, repository.NearFilter(longitude, latitude, maxDistanceMeters, filter), nil, nil)
}

// UpdateAccountProfile applies a partial profile update and returns the
// updated document, or nil when no account matched
func (r *AccountRepo) UpdateAccountProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Account, error) {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	return r.FindByIDAndUpdate(ctx, id, bson.M{"$set": set}, nil)
}

// UpdateAccountStatus toggles the soft-deactivation flag
func (r *AccountRepo) UpdateAccountStatus(ctx context.Context, id primitive.ObjectID, isActive bool) (*models.Account, error) {
	return r.FindByIDAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"isActive":  isActive,
		"updatedAt": time.Now(),
	}}, nil)
}

// UpdateAccountLocation replaces the stored location. Out-of-range
// coordinates are rejected before the store is touched, so the stored
// location is unchanged on rejection.
func (r *AccountRepo) UpdateAccountLocation(ctx context.Context, id primitive.ObjectID, loc *models.UpdateLocationRequest) (*models.Account, error) {
	if err := repository.ValidateLocationUpdate(loc); err != nil {
		return nil, err
	}
	return r.FindByIDAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"location": models.GeoLocation{
			Type:        models.GeoPointType,
			Coordinates: []float64{loc.Longitude, loc.Latitude},
			Address:     loc.Address,
			City:        loc.City,
			Governorate: loc.Governorate,
		},
		"updatedAt": time.Now(),
	}}, nil)
}
