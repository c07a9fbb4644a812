package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/herafy/herafy/internal/pkg/constants"
	"github.com/herafy/herafy/internal/pkg/logger"
	"github.com/herafy/herafy/internal/pkg/models"
	"github.com/herafy/herafy/internal/pkg/repository"
	"github.com/herafy/herafy/internal/utils"
)

// geohash precision for the cached last-position hash; ~150m cells,
// enough for matching neighborhoods without leaking exact positions
const geohashPrecision = 7

// geoCacheEnabled reports whether the redis mirror should be used
func (r *TechnicianRepo) geoCacheEnabled() bool {
	return r.redisClient != nil && r.cfg.Search.GeoCacheEnabled
}

// cacheLocation mirrors an available technician's position into the
// redis geo set. Best effort: a cache failure is logged and never fails
// the authoritative document write.
func (r *TechnicianRepo) cacheLocation(ctx context.Context, id primitive.ObjectID, location models.GeoLocation) {
	if !r.geoCacheEnabled() {
		return
	}

	member := id.Hex()
	if err := r.redisClient.GeoAdd(ctx, constants.KeyTechnicianGeo,
		location.Longitude(), location.Latitude(), member); err != nil {
		logger.Warn("failed to cache technician location", logrus.Fields{
			"technician_id": member,
			"error":         err.Error(),
		})
		return
	}

	err := r.redisClient.HSet(ctx, fmt.Sprintf(constants.KeyTechnicianLocation, member), map[string]interface{}{
		constants.FieldLongitude: location.Longitude(),
		constants.FieldLatitude:  location.Latitude(),
		constants.FieldGeohash:   utils.EncodeLocation(location, geohashPrecision),
		constants.FieldUpdatedAt: time.Now().Unix(),
	})
	if err != nil {
		logger.Warn("failed to cache technician position hash", logrus.Fields{
			"technician_id": member,
			"error":         err.Error(),
		})
	}
}

// removeFromGeoCache drops a technician from the geo set
func (r *TechnicianRepo) removeFromGeoCache(ctx context.Context, id primitive.ObjectID) {
	if !r.geoCacheEnabled() {
		return
	}

	member := id.Hex()
	if err := r.redisClient.GeoRemove(ctx, constants.KeyTechnicianGeo, member); err != nil {
		logger.Warn("failed to remove technician from geo cache", logrus.Fields{
			"technician_id": member,
			"error":         err.Error(),
		})
	}
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyTechnicianLocation, member)); err != nil {
		logger.Warn("failed to remove technician position hash", logrus.Fields{
			"technician_id": member,
			"error":         err.Error(),
		})
	}
}

// FindAvailableTechniciansNear returns available technicians within
// maxDistanceMeters of the point, nearest first. The redis geo set is
// tried first and hydrated from the document store; when the cache is
// cold or unavailable the query falls back to the authoritative
// $nearSphere search.
func (r *TechnicianRepo) FindAvailableTechniciansNear(ctx context.Context, longitude, latitude, maxDistanceMeters float64) ([]models.Technician, error) {
	if err := repository.ValidateNearArgs(longitude, latitude, maxDistanceMeters); err != nil {
		return nil, err
	}

	if r.geoCacheEnabled() {
		technicians, ok := r.findNearFromCache(ctx, longitude, latitude, maxDistanceMeters)
		if ok {
			return technicians, nil
		}
	}

	return r.FindTechniciansNearLocation(ctx, longitude, latitude, maxDistanceMeters,
		bson.M{"isAvailable": true})
}

// findNearFromCache resolves the proximity search via the geo cache.
// The second return value is false when the cache cannot answer and the
// caller should fall back to the document store.
func (r *TechnicianRepo) findNearFromCache(ctx context.Context, longitude, latitude, maxDistanceMeters float64) ([]models.Technician, bool) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyTechnicianGeo,
		longitude, latitude, maxDistanceMeters, "m")
	if err != nil {
		logger.Warn("geo cache lookup failed, falling back to document store", logrus.Fields{
			"error": err.Error(),
		})
		return nil, false
	}
	if len(locations) == 0 {
		return nil, false
	}

	ids := make([]primitive.ObjectID, 0, len(locations))
	for _, loc := range locations {
		id, err := primitive.ObjectIDFromHex(loc.Name)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, false
	}

	matches, err := r.FindMany(ctx, bson.M{
		"_id":         bson.M{"$in": ids},
		"isAvailable": true,
	}, nil, nil)
	if err != nil {
		logger.Warn("geo cache hydration failed, falling back to document store", logrus.Fields{
			"error": err.Error(),
		})
		return nil, false
	}

	// preserve the cache's nearest-first ordering
	byID := make(map[primitive.ObjectID]models.Technician, len(matches))
	for _, t := range matches {
		byID[t.ID] = t
	}
	ordered := make([]models.Technician, 0, len(matches))
	for _, id := range ids {
		if t, found := byID[id]; found {
			ordered = append(ordered, t)
		}
	}
	return ordered, true
}
