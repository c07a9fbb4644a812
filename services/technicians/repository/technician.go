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

// TechnicianRepo implements the technician repository interface
type TechnicianRepo struct {
	*repository.BaseRepository[models.Technician]
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewTechnicianRepo creates a new technician repository instance. The
// redis client is optional; without it proximity searches always go to
// the document store.
func NewTechnicianRepo(cfg *models.Config, client *database.MongoClient, redisClient *database.RedisClient) *TechnicianRepo {
	return &TechnicianRepo{
		BaseRepository: repository.NewBaseRepository[models.Technician](
			client.Collection(constants.CollectionTechnicians)),
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// CreateTechnician inserts a new technician document with registration
// defaults: pending verification, available, zeroed rating counters.
func (r *TechnicianRepo) CreateTechnician(ctx context.Context, technician *models.Technician) (*models.Technician, error) {
	if technician.ID.IsZero() {
		technician.ID = primitive.NewObjectID()
	}
	technician.Email = utils.NormalizeEmail(technician.Email)
	if technician.VerificationStatus == "" {
		technician.VerificationStatus = models.VerificationPending
	}
	if len(technician.Location.Coordinates) != 2 {
		technician.Location = models.UnsetLocation()
	}
	technician.IsVerified = technician.VerificationStatus == models.VerificationApproved
	technician.AverageRating = 0
	technician.TotalRating = 0
	technician.TotalOrders = 0
	now := time.Now()
	technician.CreatedAt = now
	technician.UpdatedAt = now

	return r.Create(ctx, technician)
}

// FindTechnicians returns all technicians matching the filter
func (r *TechnicianRepo) FindTechnicians(ctx context.Context, filter bson.M, projection bson.M) ([]models.Technician, error) {
	return r.FindMany(ctx, filter, projection, nil)
}

// FindTechnicianByID retrieves a technician by ID
func (r *TechnicianRepo) FindTechnicianByID(ctx context.Context, id primitive.ObjectID, projection bson.M) (*models.Technician, error) {
	return r.FindOne(ctx, bson.M{"_id": id}, projection, nil)
}

// FindTechnicianByEmail retrieves a technician by its normalized email
func (r *TechnicianRepo) FindTechnicianByEmail(ctx context.Context, email string, projection bson.M) (*models.Technician, error) {
	return r.FindOne(ctx, bson.M{"email": utils.NormalizeEmail(email)}, projection, nil)
}

// FindTechnicianByPhone retrieves a technician by phone number
func (r *TechnicianRepo) FindTechnicianByPhone(ctx context.Context, phone string, projection bson.M) (*models.Technician, error) {
	return r.FindOne(ctx, bson.M{"phone": phone}, projection, nil)
}

// DeleteTechnicianByID removes a technician for administrative use and
// drops it from the geo cache
func (r *TechnicianRepo) DeleteTechnicianByID(ctx context.Context, id primitive.ObjectID) (*models.Technician, error) {
	deleted, err := r.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		r.removeFromGeoCache(ctx, id)
	}
	return deleted, nil
}

// TechnicianExists reports whether any technician already uses the
// email or the phone number
func (r *TechnicianRepo) TechnicianExists(ctx context.Context, email, phone string) (bool, error) {
	return r.Exists(ctx, bson.M{
		"$or": bson.A{
			bson.M{"email": utils.NormalizeEmail(email)},
			bson.M{"phone": phone},
		},
	})
}

// FindAvailableTechnicians merges the caller filter with isAvailable
// before delegating
func (r *TechnicianRepo) FindAvailableTechnicians(ctx context.Context, filter bson.M, projection bson.M) ([]models.Technician, error) {
	merged := bson.M{"isAvailable": true}
	for k, v := range filter {
		merged[k] = v
	}
	return r.FindMany(ctx, merged, projection, nil)
}

// FindTechniciansNearLocation returns technicians within
// maxDistanceMeters of the given point, nearest first
func (r *TechnicianRepo) FindTechniciansNearLocation(ctx context.Context, longitude, latitude, maxDistanceMeters float64, filter bson.M) ([]models.Technician, error) {
	if err := repository.ValidateNearArgs(longitude, latitude, maxDistanceMeters); err != nil {
		return nil, err
	}
	return r.FindMany(ctx, repository.NearFilter(longitude, latitude, maxDistanceMeters, filter), nil, nil)
}

// UpdateTechnicianProfile applies a partial profile update and returns
// the updated document
func (r *TechnicianRepo) UpdateTechnicianProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Technician, error) {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	return r.FindByIDAndUpdate(ctx, id, bson.M{"$set": set}, nil)
}

// UpdateTechnicianAvailability toggles the availability flag and keeps
// the geo cache membership in sync
func (r *TechnicianRepo) UpdateTechnicianAvailability(ctx context.Context, id primitive.ObjectID, isAvailable bool) (*models.Technician, error) {
	technician, err := r.FindByIDAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"isAvailable": isAvailable,
		"updatedAt":   time.Now(),
	}}, nil)
	if err != nil || technician == nil {
		return technician, err
	}

	if isAvailable && technician.Location.IsSet() {
		r.cacheLocation(ctx, technician.ID, technician.Location)
	} else if !isAvailable {
		r.removeFromGeoCache(ctx, id)
	}
	return technician, nil
}

// UpdateTechnicianLocation replaces the stored location and mirrors it
// to the geo cache when the technician is available. Out-of-range
// coordinates are rejected before the store is touched.
func (r *TechnicianRepo) UpdateTechnicianLocation(ctx context.Context, id primitive.ObjectID, loc *models.UpdateLocationRequest) (*models.Technician, error) {
	if err := repository.ValidateLocationUpdate(loc); err != nil {
		return nil, err
	}

	technician, err := r.FindByIDAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"location": models.GeoLocation{
			Type:        models.GeoPointType,
			Coordinates: []float64{loc.Longitude, loc.Latitude},
			Address:     loc.Address,
			City:        loc.City,
			Governorate: loc.Governorate,
		},
		"updatedAt": time.Now(),
	}}, nil)
	if err != nil || technician == nil {
		return technician, err
	}

	if technician.IsAvailable && technician.Location.IsSet() {
		r.cacheLocation(ctx, technician.ID, technician.Location)
	}
	return technician, nil
}

// UpdateVerificationStatus writes the verification outcome. The
// pending-only transition rule lives in the usecase; this is the plain
// field write. Approval also flips the isVerified flag.
func (r *TechnicianRepo) UpdateVerificationStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Technician, error) {
	return r.FindByIDAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"verificationStatus": status,
		"isVerified":         status == models.VerificationApproved,
		"updatedAt":          time.Now(),
	}}, nil)
}
