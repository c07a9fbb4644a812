package repository

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/herafy/herafy/internal/pkg/errors"
	"github.com/herafy/herafy/internal/pkg/models"
)

// ApplyRating records one completed order's rating: it increments
// totalOrders and totalRating and recomputes averageRating in a single
// atomic store update, so concurrent raters can never leave the average
// stale relative to the counters. Returns the post-image, or nil when
// the technician does not exist.
func (r *TechnicianRepo) ApplyRating(ctx context.Context, id primitive.ObjectID, ratingValue float64) (*models.Technician, error) {
	if ratingValue < 0 || math.IsInf(ratingValue, 0) || math.IsNaN(ratingValue) {
		return nil, apperrors.InvalidArgument(
			fmt.Sprintf("rating value must be a non-negative finite number, got %v", ratingValue))
	}
	return r.FindByIDAndUpdate(ctx, id, ratingPipeline(ratingValue), nil)
}

// ratingPipeline builds the counter increment plus derived-field
// recompute as one aggregation-pipeline update. The recompute sits in a
// second $set stage so it reads the already-incremented counters;
// both stages commit in the same single-document write.
func ratingPipeline(ratingValue float64) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "totalOrders", Value: bson.D{{Key: "$add", Value: bson.A{"$totalOrders", 1}}}},
			{Key: "totalRating", Value: bson.D{{Key: "$add", Value: bson.A{"$totalRating", ratingValue}}}},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "averageRating", Value: averageRatingExpr()},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}
}

// averageRatingExpr is the derived-field rule: totalRating/totalOrders
// when any orders exist, otherwise 0. Any future write that touches the
// counters must run this expression in the same update.
func averageRatingExpr() bson.D {
	return bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$gt", Value: bson.A{"$totalOrders", 0}}},
		bson.D{{Key: "$divide", Value: bson.A{"$totalRating", "$totalOrders"}}},
		0,
	}}}
}
