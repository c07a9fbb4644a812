package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/herafy/herafy/internal/pkg/converter"
	apperrors "github.com/herafy/herafy/internal/pkg/errors"
	"github.com/herafy/herafy/internal/pkg/logger"
	"github.com/herafy/herafy/internal/pkg/models"
	"github.com/herafy/herafy/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Register creates a new customer or admin account. The email is
// normalized and the password bcrypt-hashed before anything reaches the
// store; the exists pre-flight keeps the common duplicate path cheap
// while the unique indexes stay authoritative under races.
func (uc *AccountUC) Register(ctx context.Context, req *models.RegisterAccountRequest) (*models.Account, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, apperrors.InvalidArgument(fmt.Sprintf("invalid email address: %s", utils.MaskEmail(email)))
	}
	if !utils.IsValidPhoneNumber(req.Phone) {
		return nil, apperrors.InvalidArgument("invalid phone number")
	}
	if req.Role != "" && req.Role != models.RoleCustomer && req.Role != models.RoleAdmin {
		return nil, apperrors.InvalidArgument(fmt.Sprintf("unknown role: %s", req.Role))
	}

	taken, err := uc.accountRepo.AccountExists(ctx, email, req.Phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ConstraintViolation("email or phone already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	account := &models.Account{
		Email:          email,
		Phone:          req.Phone,
		Password:       string(hash),
		FullName:       req.FullName,
		Role:           req.Role,
		ProfilePicture: req.ProfilePicture,
		IsActive:       true,
	}

	created, err := uc.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		logger.Error("failed to register account", logrus.Fields{
			"email": utils.MaskEmail(email),
			"error": err.Error(),
		})
		return nil, err
	}

	logger.Info("account registered", logrus.Fields{
		"account_id": created.ID.Hex(),
		"role":       created.Role,
	})
	return created, nil
}

// GetAccountByID retrieves an account by its hex id
func (uc *AccountUC) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	return uc.accountRepo.FindAccountByID(ctx, oid, nil)
}

// GetAccountByEmail retrieves an account for authentication lookup
func (uc *AccountUC) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return uc.accountRepo.FindAccountByEmail(ctx, email, nil)
}

// GetAccountByPhone retrieves an account for authentication lookup
func (uc *AccountUC) GetAccountByPhone(ctx context.Context, phone string) (*models.Account, error) {
	return uc.accountRepo.FindAccountByPhone(ctx, phone, nil)
}

// UpdateProfile updates the mutable profile fields and returns the
// updated account, or nil when the account no longer exists
func (uc *AccountUC) UpdateProfile(ctx context.Context, id string, fullName, profilePicture string) (*models.Account, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if fullName != "" {
		fields["fullName"] = fullName
	}
	if profilePicture != "" {
		fields["profilePicture"] = profilePicture
	}
	if len(fields) == 0 {
		return nil, apperrors.InvalidArgument("no profile fields to update")
	}
	return uc.accountRepo.UpdateAccountProfile(ctx, oid, fields)
}

// SetAccountStatus toggles soft-deactivation
func (uc *AccountUC) SetAccountStatus(ctx context.Context, id string, isActive bool) (*models.Account, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	account, err := uc.accountRepo.UpdateAccountStatus(ctx, oid, isActive)
	if err != nil {
		return nil, err
	}
	if account != nil {
		logger.Info("account status updated", logrus.Fields{
			"account_id": account.ID.Hex(),
			"is_active":  account.IsActive,
		})
	}
	return account, nil
}

// UpdateLocation replaces the account's stored location
func (uc *AccountUC) UpdateLocation(ctx context.Context, id string, req *models.UpdateLocationRequest) (*models.Account, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	return uc.accountRepo.UpdateAccountLocation(ctx, oid, req)
}

// DeleteAccount removes an account for administrative use
func (uc *AccountUC) DeleteAccount(ctx context.Context, id string) (*models.Account, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	deleted, err := uc.accountRepo.DeleteAccountByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		logger.Warn("account deleted", logrus.Fields{"account_id": deleted.ID.Hex()})
	}
	return deleted, nil
}

// FindNearbyAccounts returns active accounts near the given point. A
// zero radius falls back to the configured default; negative or
// non-finite radii are rejected by the repository.
func (uc *AccountUC) FindNearbyAccounts(ctx context.Context, longitude, latitude, radiusMeters float64) ([]models.Account, error) {
	if radiusMeters == 0 {
		radiusMeters = uc.cfg.Search.DefaultRadiusMeters
	}
	return uc.accountRepo.FindAccountsNearLocation(ctx, longitude, latitude, radiusMeters,
		bson.M{"isActive": true})
}

func (uc *AccountUC) parseID(id string) (primitive.ObjectID, error) {
	oid := converter.StrToObjectID(id)
	if oid.IsZero() {
		return primitive.NilObjectID, apperrors.InvalidArgument(fmt.Sprintf("invalid account id: %s", id))
	}
	return oid, nil
}
