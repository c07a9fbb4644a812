package repository

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"

	apperrors "github.com/herafy/herafy/internal/pkg/errors"
	"github.com/herafy/herafy/internal/pkg/models"
)

// ValidateNearArgs rejects proximity-search parameters before any store
// call: coordinates must be in WGS84 range and the radius a positive
// finite number of meters.
func ValidateNearArgs(longitude, latitude, maxDistanceMeters float64) error {
	if !models.ValidCoordinates(longitude, latitude) {
		return apperrors.InvalidArgument(
			fmt.Sprintf("coordinates out of range: [%v, %v]", longitude, latitude))
	}
	if maxDistanceMeters <= 0 || math.IsInf(maxDistanceMeters, 0) || math.IsNaN(maxDistanceMeters) {
		return apperrors.InvalidArgument(
			fmt.Sprintf("search radius must be a positive finite number of meters, got %v", maxDistanceMeters))
	}
	return nil
}

// ValidateLocationUpdate rejects location writes whose coordinates fall
// outside the WGS84 range.
func ValidateLocationUpdate(loc *models.UpdateLocationRequest) error {
	if loc == nil {
		return apperrors.InvalidArgument("location update is required")
	}
	if !models.ValidCoordinates(loc.Longitude, loc.Latitude) {
		return apperrors.InvalidArgument(
			fmt.Sprintf("coordinates out of range: [%v, %v]", loc.Longitude, loc.Latitude))
	}
	return nil
}

// NearFilter builds a $nearSphere filter around the given point, merged
// with any extra caller filter. Documents still carrying the unset
// [0, 0] location are excluded so an entity without a real position
// never matches a search near the origin.
func NearFilter(longitude, latitude, maxDistanceMeters float64, extra bson.M) bson.M {
	filter := bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        models.GeoPointType,
					"coordinates": []float64{longitude, latitude},
				},
				"$maxDistance": maxDistanceMeters,
			},
		},
		"location.coordinates": bson.M{"$ne": []float64{0, 0}},
	}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}
