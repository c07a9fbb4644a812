package technicians

import (
	"context"

	"github.com/herafy/herafy/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/herafy/herafy/services/technicians TechnicianUC

// TechnicianUC represents the technician usecase interface consumed by
// controllers and other services
type TechnicianUC interface {
	// registration and lookup
	Register(ctx context.Context, req *models.RegisterTechnicianRequest) (*models.Technician, error)
	GetTechnicianByID(ctx context.Context, id string) (*models.Technician, error)
	GetTechnicianByEmail(ctx context.Context, email string) (*models.Technician, error)
	GetTechnicianByPhone(ctx context.Context, phone string) (*models.Technician, error)

	// profile and lifecycle
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) (*models.Technician, error)
	SetAvailability(ctx context.Context, id string, isAvailable bool) (*models.Technician, error)
	UpdateLocation(ctx context.Context, id string, req *models.UpdateLocationRequest) (*models.Technician, error)
	DeleteTechnician(ctx context.Context, id string) (*models.Technician, error)

	// verification state machine
	ApproveTechnician(ctx context.Context, id string) (*models.Technician, error)
	RejectTechnician(ctx context.Context, id string) (*models.Technician, error)

	// rating
	SubmitRating(ctx context.Context, id string, ratingValue float64) (*models.Technician, error)

	// proximity search
	FindNearbyTechnicians(ctx context.Context, longitude, latitude, radiusMeters float64) ([]models.Technician, error)
}
