// Package repository provides the entity-agnostic document repository the
// per-entity repositories are built on. A BaseRepository is bound to one
// collection, passed explicitly at construction; filters and updates are
// structured documents passed through to the store unmodified.
package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/herafy/herafy/internal/pkg/errors"
)

// UpdateCounts reports the outcome of a multi-document update.
type UpdateCounts struct {
	MatchedCount  int64
	ModifiedCount int64
}

// BaseRepository implements generic CRUD over a single collection.
// All operations are single-document atomic at the store; lookups that
// match nothing return (nil, nil).
type BaseRepository[T any] struct {
	coll *mongo.Collection
}

// NewBaseRepository binds a generic repository to a collection.
func NewBaseRepository[T any](coll *mongo.Collection) *BaseRepository[T] {
	return &BaseRepository[T]{coll: coll}
}

// Collection returns the underlying collection handle.
func (r *BaseRepository[T]) Collection() *mongo.Collection {
	return r.coll
}

// Create inserts a new document. The caller assigns identity and
// timestamps before insert; a unique-field collision surfaces as
// CONSTRAINT_VIOLATION.
func (r *BaseRepository[T]) Create(ctx context.Context, doc *T) (*T, error) {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, apperrors.FromStore(fmt.Sprintf("insert %s", r.coll.Name()), err)
	}
	return doc, nil
}

// FindMany returns all documents matching the filter, an empty slice if
// none. The projection limits returned fields and may be nil.
func (r *BaseRepository[T]) FindMany(ctx context.Context, filter interface{}, projection interface{}, opts *options.FindOptions) ([]T, error) {
	if opts == nil {
		opts = options.Find()
	}
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.FromStore(fmt.Sprintf("find %s", r.coll.Name()), err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, apperrors.FromStore(fmt.Sprintf("decode %s", r.coll.Name()), err)
	}
	return results, nil
}

// FindOne returns the first document matching the filter, or nil.
func (r *BaseRepository[T]) FindOne(ctx context.Context, filter interface{}, projection interface{}, opts *options.FindOneOptions) (*T, error) {
	if opts == nil {
		opts = options.FindOne()
	}
	if projection != nil {
		opts.SetProjection(projection)
	}

	var doc T
	err := r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FromStore(fmt.Sprintf("find one %s", r.coll.Name()), err)
	}
	return &doc, nil
}

// UpdateOne applies the update to the first match and returns the
// document. The post-image is returned unless the caller's options say
// otherwise; nil means nothing matched.
func (r *BaseRepository[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (*T, error) {
	if opts == nil {
		opts = options.FindOneAndUpdate().SetReturnDocument(options.After)
	}

	var doc T
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FromStore(fmt.Sprintf("update %s", r.coll.Name()), err)
	}
	return &doc, nil
}

// UpdateMany applies the update to every match.
func (r *BaseRepository[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (*UpdateCounts, error) {
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, apperrors.FromStore(fmt.Sprintf("update many %s", r.coll.Name()), err)
	}
	return &UpdateCounts{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// DeleteOne removes the first match and reports how many documents were
// deleted (0 or 1).
func (r *BaseRepository[T]) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, apperrors.FromStore(fmt.Sprintf("delete %s", r.coll.Name()), err)
	}
	return res.DeletedCount, nil
}

// DeleteMany removes every match and reports the deleted count.
func (r *BaseRepository[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, apperrors.FromStore(fmt.Sprintf("delete many %s", r.coll.Name()), err)
	}
	return res.DeletedCount, nil
}

// FindOneAndDelete removes the first match and returns its pre-image,
// or nil when nothing matched.
func (r *BaseRepository[T]) FindOneAndDelete(ctx context.Context, filter interface{}) (*T, error) {
	var doc T
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FromStore(fmt.Sprintf("find and delete %s", r.coll.Name()), err)
	}
	return &doc, nil
}

// FindByIDAndUpdate applies the update to the document with the given id.
func (r *BaseRepository[T]) FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update interface{}, opts *options.FindOneAndUpdateOptions) (*T, error) {
	return r.UpdateOne(ctx, bson.M{"_id": id}, update, opts)
}

// FindByIDAndDelete removes the document with the given id and returns it.
func (r *BaseRepository[T]) FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return r.FindOneAndDelete(ctx, bson.M{"_id": id})
}

// DeleteByID removes the document with the given id and returns it.
func (r *BaseRepository[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return r.FindByIDAndDelete(ctx, id)
}

// Exists reports whether any document matches the filter. The count is
// capped at one so the check stays cheap on large collections.
func (r *BaseRepository[T]) Exists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, apperrors.FromStore(fmt.Sprintf("count %s", r.coll.Name()), err)
	}
	return count > 0, nil
}
