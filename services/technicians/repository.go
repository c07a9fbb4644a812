package technicians

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/herafy/herafy/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/herafy/herafy/services/technicians TechnicianRepo

// TechnicianRepo defines the interface for technician data access operations
type TechnicianRepo interface {
	// CRUD operations
	CreateTechnician(ctx context.Context, technician *models.Technician) (*models.Technician, error)
	FindTechnicians(ctx context.Context, filter bson.M, projection bson.M) ([]models.Technician, error)
	FindTechnicianByID(ctx context.Context, id primitive.ObjectID, projection bson.M) (*models.Technician, error)
	FindTechnicianByEmail(ctx context.Context, email string, projection bson.M) (*models.Technician, error)
	FindTechnicianByPhone(ctx context.Context, phone string, projection bson.M) (*models.Technician, error)
	DeleteTechnicianByID(ctx context.Context, id primitive.ObjectID) (*models.Technician, error)

	// Check operations
	TechnicianExists(ctx context.Context, email, phone string) (bool, error)

	// Filtered finders
	FindAvailableTechnicians(ctx context.Context, filter bson.M, projection bson.M) ([]models.Technician, error)
	FindTechniciansNearLocation(ctx context.Context, longitude, latitude, maxDistanceMeters float64, filter bson.M) ([]models.Technician, error)
	FindAvailableTechniciansNear(ctx context.Context, longitude, latitude, maxDistanceMeters float64) ([]models.Technician, error)

	// Mutators
	UpdateTechnicianProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Technician, error)
	UpdateTechnicianAvailability(ctx context.Context, id primitive.ObjectID, isAvailable bool) (*models.Technician, error)
	UpdateTechnicianLocation(ctx context.Context, id primitive.ObjectID, loc *models.UpdateLocationRequest) (*models.Technician, error)
	UpdateVerificationStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Technician, error)

	// Rating operations
	ApplyRating(ctx context.Context, id primitive.ObjectID, ratingValue float64) (*models.Technician, error)
}
