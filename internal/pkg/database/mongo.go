package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/herafy/herafy/internal/pkg/constants"
	"github.com/herafy/herafy/internal/pkg/models"
)

// MongoClient represents a document store client bound to one logical
// database. It is constructed once at startup and handed to repositories
// explicitly.
type MongoClient struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoClient creates a new document store client
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	if config.Database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	opts := options.Client().ApplyURI(config.URI)
	if config.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(config.MaxPoolSize))
	}

	timeout := time.Duration(config.ConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoClient{
		client: client,
		db:     client.Database(config.Database),
	}, nil
}

// Collection returns a handle to the named collection
func (m *MongoClient) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// EnsureIndexes creates the indexes the repositories rely on: unique
// email and phone per collection and a 2dsphere index on the location
// coordinates.
func (m *MongoClient) EnsureIndexes(ctx context.Context) error {
	for _, name := range []string{constants.CollectionAccounts, constants.CollectionTechnicians} {
		_, err := m.Collection(name).Indexes().CreateMany(ctx, EntityIndexes())
		if err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", name, err)
		}
	}
	return nil
}

// EntityIndexes returns the index set shared by the account and
// technician collections.
func EntityIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
	}
}

// Close disconnects the client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
