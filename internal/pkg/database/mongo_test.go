package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/herafy/herafy/internal/pkg/models"
)

func TestEntityIndexes(t *testing.T) {
	indexes := EntityIndexes()
	require.Len(t, indexes, 3)

	email := indexes[0]
	assert.Equal(t, bson.D{{Key: "email", Value: 1}}, email.Keys)
	require.NotNil(t, email.Options)
	require.NotNil(t, email.Options.Unique)
	assert.True(t, *email.Options.Unique)

	phone := indexes[1]
	assert.Equal(t, bson.D{{Key: "phone", Value: 1}}, phone.Keys)
	require.NotNil(t, phone.Options)
	require.NotNil(t, phone.Options.Unique)
	assert.True(t, *phone.Options.Unique)

	location := indexes[2]
	assert.Equal(t, bson.D{{Key: "location", Value: "2dsphere"}}, location.Keys)
}

func TestNewMongoClientRequiresDatabase(t *testing.T) {
	client, err := NewMongoClient(models.MongoConfig{URI: "mongodb://localhost:27017"})
	require.Error(t, err)
	assert.Nil(t, client)
}
