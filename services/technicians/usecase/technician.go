package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/herafy/herafy/internal/pkg/converter"
	apperrors "github.com/herafy/herafy/internal/pkg/errors"
	"github.com/herafy/herafy/internal/pkg/logger"
	"github.com/herafy/herafy/internal/pkg/models"
	"github.com/herafy/herafy/internal/utils"
)

const maxBioLength = 500

// Register creates a new technician with pending verification status
func (uc *TechnicianUC) Register(ctx context.Context, req *models.RegisterTechnicianRequest) (*models.Technician, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, apperrors.InvalidArgument(fmt.Sprintf("invalid email address: %s", utils.MaskEmail(email)))
	}
	if !utils.IsValidPhoneNumber(req.Phone) {
		return nil, apperrors.InvalidArgument("invalid phone number")
	}
	if len(req.ServiceCategories) == 0 {
		return nil, apperrors.InvalidArgument("at least one service category is required")
	}
	if req.YearsOfExperience < 0 {
		return nil, apperrors.InvalidArgument("years of experience cannot be negative")
	}
	if len(req.Bio) > maxBioLength {
		return nil, apperrors.InvalidArgument(fmt.Sprintf("bio exceeds %d characters", maxBioLength))
	}

	taken, err := uc.technicianRepo.TechnicianExists(ctx, email, req.Phone)
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

	technician := &models.Technician{
		Email:              email,
		Phone:              req.Phone,
		Password:           string(hash),
		FullName:           req.FullName,
		ProfilePicture:     req.ProfilePicture,
		ServiceCategories:  req.ServiceCategories,
		YearsOfExperience:  req.YearsOfExperience,
		Bio:                req.Bio,
		KYCDocuments:       req.KYCDocuments,
		VerificationStatus: models.VerificationPending,
		IsAvailable:        true,
	}

	created, err := uc.technicianRepo.CreateTechnician(ctx, technician)
	if err != nil {
		logger.Error("failed to register technician", logrus.Fields{
			"email": utils.MaskEmail(email),
			"error": err.Error(),
		})
		return nil, err
	}

	logger.Info("technician registered", logrus.Fields{
		"technician_id": created.ID.Hex(),
		"categories":    created.ServiceCategories,
	})
	return created, nil
}

// GetTechnicianByID retrieves a technician by its hex id
func (uc *TechnicianUC) GetTechnicianByID(ctx context.Context, id string) (*models.Technician, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	return uc.technicianRepo.FindTechnicianByID(ctx, oid, nil)
}

// GetTechnicianByEmail retrieves a technician for authentication lookup
func (uc *TechnicianUC) GetTechnicianByEmail(ctx context.Context, email string) (*models.Technician, error) {
	return uc.technicianRepo.FindTechnicianByEmail(ctx, email, nil)
}

// GetTechnicianByPhone retrieves a technician for authentication lookup
func (uc *TechnicianUC) GetTechnicianByPhone(ctx context.Context, phone string) (*models.Technician, error) {
	return uc.technicianRepo.FindTechnicianByPhone(ctx, phone, nil)
}

// UpdateProfile applies a partial update to the mutable profile fields
func (uc *TechnicianUC) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) (*models.Technician, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, apperrors.InvalidArgument("no profile fields to update")
	}
	update := bson.M{}
	for k, v := range fields {
		switch k {
		case "fullName", "profilePicture", "serviceCategories", "yearsOfExperience", "bio", "kycDocuments":
			update[k] = v
		default:
			return nil, apperrors.InvalidArgument(fmt.Sprintf("field %q is not updatable", k))
		}
	}
	return uc.technicianRepo.UpdateTechnicianProfile(ctx, oid, update)
}

// SetAvailability toggles whether the technician can be matched
func (uc *TechnicianUC) SetAvailability(ctx context.Context, id string, isAvailable bool) (*models.Technician, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	technician, err := uc.technicianRepo.UpdateTechnicianAvailability(ctx, oid, isAvailable)
	if err != nil {
		return nil, err
	}
	if technician != nil {
		logger.Info("technician availability updated", logrus.Fields{
			"technician_id": technician.ID.Hex(),
			"is_available":  technician.IsAvailable,
		})
	}
	return technician, nil
}

// UpdateLocation replaces the technician's stored location
func (uc *TechnicianUC) UpdateLocation(ctx context.Context, id string, req *models.UpdateLocationRequest) (*models.Technician, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	return uc.technicianRepo.UpdateTechnicianLocation(ctx, oid, req)
}

// DeleteTechnician removes a technician for administrative use
func (uc *TechnicianUC) DeleteTechnician(ctx context.Context, id string) (*models.Technician, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	deleted, err := uc.technicianRepo.DeleteTechnicianByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		logger.Warn("technician deleted", logrus.Fields{"technician_id": deleted.ID.Hex()})
	}
	return deleted, nil
}

// ApproveTechnician moves a pending technician to approved
func (uc *TechnicianUC) ApproveTechnician(ctx context.Context, id string) (*models.Technician, error) {
	return uc.transitionVerification(ctx, id, models.VerificationApproved)
}

// RejectTechnician moves a pending technician to rejected
func (uc *TechnicianUC) RejectTechnician(ctx context.Context, id string) (*models.Technician, error) {
	return uc.transitionVerification(ctx, id, models.VerificationRejected)
}

// transitionVerification enforces the verification state machine: only
// pending technicians may transition; approved and rejected are
// terminal for this subsystem.
func (uc *TechnicianUC) transitionVerification(ctx context.Context, id string, status string) (*models.Technician, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}

	current, err := uc.technicianRepo.FindTechnicianByID(ctx, oid, bson.M{"verificationStatus": 1})
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	if current.VerificationStatus != models.VerificationPending {
		return nil, apperrors.InvalidArgument(fmt.Sprintf(
			"verification status is %s and cannot transition to %s",
			current.VerificationStatus, status))
	}

	technician, err := uc.technicianRepo.UpdateVerificationStatus(ctx, oid, status)
	if err != nil {
		return nil, err
	}
	if technician != nil {
		logger.Info("technician verification updated", logrus.Fields{
			"technician_id": technician.ID.Hex(),
			"status":        technician.VerificationStatus,
		})
	}
	return technician, nil
}

// SubmitRating records a completed order's rating. The value must lie
// within the 1..5 star range; the atomic counter-and-average update is
// the repository's responsibility.
func (uc *TechnicianUC) SubmitRating(ctx context.Context, id string, ratingValue float64) (*models.Technician, error) {
	oid, err := uc.parseID(id)
	if err != nil {
		return nil, err
	}
	if ratingValue < 1 || ratingValue > 5 {
		return nil, apperrors.InvalidArgument(fmt.Sprintf("rating must be between 1 and 5, got %v", ratingValue))
	}

	technician, err := uc.technicianRepo.ApplyRating(ctx, oid, ratingValue)
	if err != nil {
		return nil, err
	}
	if technician != nil {
		logger.Info("rating applied", logrus.Fields{
			"technician_id":  technician.ID.Hex(),
			"total_orders":   technician.TotalOrders,
			"average_rating": technician.AverageRating,
		})
	}
	return technician, nil
}

// FindNearbyTechnicians returns available technicians near the given
// point, nearest first. A zero radius falls back to the configured
// default.
func (uc *TechnicianUC) FindNearbyTechnicians(ctx context.Context, longitude, latitude, radiusMeters float64) ([]models.Technician, error) {
	if radiusMeters == 0 {
		radiusMeters = uc.cfg.Search.DefaultRadiusMeters
	}
	return uc.technicianRepo.FindAvailableTechniciansNear(ctx, longitude, latitude, radiusMeters)
}

func (uc *TechnicianUC) parseID(id string) (primitive.ObjectID, error) {
	oid := converter.StrToObjectID(id)
	if oid.IsZero() {
		return primitive.NilObjectID, apperrors.InvalidArgument(fmt.Sprintf("invalid technician id: %s", id))
	}
	return oid, nil
}
