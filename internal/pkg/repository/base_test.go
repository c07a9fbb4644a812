package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "github.com/herafy/herafy/internal/pkg/errors"
)

// note is a minimal document type for exercising the generic repository.
type note struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Title string             `bson:"title"`
	Done  bool               `bson:"done"`
}

func namespace(mt *mtest.T) string {
	return fmt.Sprintf("%s.%s", mt.DB.Name(), mt.Coll.Name())
}

func TestBaseRepositoryCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success returns the inserted document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := NewBaseRepository[note](mt.Coll)
		doc := &note{ID: primitive.NewObjectID(), Title: "first"}

		created, err := repo.Create(context.Background(), doc)
		require.NoError(mt, err)
		assert.Equal(mt, doc, created)
	})

	mt.Run("duplicate key surfaces as constraint violation", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		repo := NewBaseRepository[note](mt.Coll)

		created, err := repo.Create(context.Background(), &note{ID: primitive.NewObjectID(), Title: "dup"})
		require.Error(mt, err)
		assert.Nil(mt, created)
		assert.True(mt, apperrors.Is(err, apperrors.CodeConstraintViolation))
	})
}

func TestBaseRepositoryFindOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("hit decodes the document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "found"},
			{Key: "done", Value: true},
		}))

		repo := NewBaseRepository[note](mt.Coll)

		doc, err := repo.FindOne(context.Background(), bson.M{"_id": id}, nil, nil)
		require.NoError(mt, err)
		require.NotNil(mt, doc)
		assert.Equal(mt, id, doc.ID)
		assert.Equal(mt, "found", doc.Title)
		assert.True(mt, doc.Done)
	})

	mt.Run("miss returns nil without error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		repo := NewBaseRepository[note](mt.Coll)

		doc, err := repo.FindOne(context.Background(), bson.M{"_id": primitive.NewObjectID()}, nil, nil)
		require.NoError(mt, err)
		assert.Nil(mt, doc)
	})
}

func TestBaseRepositoryFindMany(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every batch document", func(mt *mtest.T) {
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "title", Value: "one"}},
			bson.D{{Key: "_id", Value: second}, {Key: "title", Value: "two"}},
		))

		repo := NewBaseRepository[note](mt.Coll)

		docs, err := repo.FindMany(context.Background(), bson.M{}, nil, nil)
		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, first, docs[0].ID)
		assert.Equal(mt, second, docs[1].ID)
	})

	mt.Run("no matches yields an empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		repo := NewBaseRepository[note](mt.Coll)

		docs, err := repo.FindMany(context.Background(), bson.M{"done": true}, nil, nil)
		require.NoError(mt, err)
		require.NotNil(mt, docs)
		assert.Empty(mt, docs)
	})
}

func TestBaseRepositoryUpdateOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the post-image", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "updated"},
			{Key: "done", Value: true},
		}}))

		repo := NewBaseRepository[note](mt.Coll)

		doc, err := repo.UpdateOne(context.Background(), bson.M{"_id": id},
			bson.M{"$set": bson.M{"done": true}}, nil)
		require.NoError(mt, err)
		require.NotNil(mt, doc)
		assert.Equal(mt, "updated", doc.Title)
		assert.True(mt, doc.Done)
	})

	mt.Run("no match returns nil without error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		repo := NewBaseRepository[note](mt.Coll)

		doc, err := repo.UpdateOne(context.Background(), bson.M{"_id": primitive.NewObjectID()},
			bson.M{"$set": bson.M{"done": true}}, nil)
		require.NoError(mt, err)
		assert.Nil(mt, doc)
	})
}

func TestBaseRepositoryUpdateMany(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reports matched and modified counts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 3},
			bson.E{Key: "nModified", Value: 2},
		))

		repo := NewBaseRepository[note](mt.Coll)

		counts, err := repo.UpdateMany(context.Background(), bson.M{"done": false},
			bson.M{"$set": bson.M{"done": true}})
		require.NoError(mt, err)
		require.NotNil(mt, counts)
		assert.Equal(mt, int64(3), counts.MatchedCount)
		assert.Equal(mt, int64(2), counts.ModifiedCount)
	})
}

func TestBaseRepositoryDeleteOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reports the deleted count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		repo := NewBaseRepository[note](mt.Coll)

		count, err := repo.DeleteOne(context.Background(), bson.M{"title": "first"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), count)
	})
}

func TestBaseRepositoryFindOneAndDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the pre-image", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "gone"},
		}}))

		repo := NewBaseRepository[note](mt.Coll)

		doc, err := repo.FindOneAndDelete(context.Background(), bson.M{"_id": id})
		require.NoError(mt, err)
		require.NotNil(mt, doc)
		assert.Equal(mt, "gone", doc.Title)
	})

	mt.Run("no match returns nil without error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		repo := NewBaseRepository[note](mt.Coll)

		doc, err := repo.FindOneAndDelete(context.Background(), bson.M{"_id": primitive.NewObjectID()})
		require.NoError(mt, err)
		assert.Nil(mt, doc)
	})
}

func TestBaseRepositoryExists(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("match found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "n", Value: 1}}))

		repo := NewBaseRepository[note](mt.Coll)

		exists, err := repo.Exists(context.Background(), bson.M{"title": "first"})
		require.NoError(mt, err)
		assert.True(mt, exists)
	})

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		repo := NewBaseRepository[note](mt.Coll)

		exists, err := repo.Exists(context.Background(), bson.M{"title": "missing"})
		require.NoError(mt, err)
		assert.False(mt, exists)
	})
}
