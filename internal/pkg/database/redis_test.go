package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRedisClient() (*RedisClient, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()
	return &RedisClient{Client: client}, mock
}

func TestRedisClientSetGet(t *testing.T) {
	r, mock := newMockRedisClient()
	ctx := context.Background()

	mock.ExpectSet("session:abc", "value", time.Minute).SetVal("OK")
	mock.ExpectGet("session:abc").SetVal("value")

	require.NoError(t, r.Set(ctx, "session:abc", "value", time.Minute))

	got, err := r.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClientDelete(t *testing.T) {
	r, mock := newMockRedisClient()

	mock.ExpectDel("session:abc").SetVal(1)

	require.NoError(t, r.Delete(context.Background(), "session:abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClientHSet(t *testing.T) {
	r, mock := newMockRedisClient()

	values := map[string]interface{}{"lat": 30.0444, "lng": 31.2357}
	mock.ExpectHSet("technician:location:abc", values).SetVal(2)

	require.NoError(t, r.HSet(context.Background(), "technician:location:abc", values))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClientGeoOps(t *testing.T) {
	r, mock := newMockRedisClient()
	ctx := context.Background()

	mock.ExpectGeoAdd("technicians:geo", &redis.GeoLocation{
		Longitude: 31.2357,
		Latitude:  30.0444,
		Name:      "member-1",
	}).SetVal(1)

	mock.ExpectGeoRadius("technicians:geo", 31.2357, 30.0444, &redis.GeoRadiusQuery{
		Radius:    1000,
		Unit:      "m",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}).SetVal([]redis.GeoLocation{
		{Name: "member-1", Longitude: 31.2357, Latitude: 30.0444, Dist: 12},
	})

	mock.ExpectZRem("technicians:geo", "member-1").SetVal(1)

	require.NoError(t, r.GeoAdd(ctx, "technicians:geo", 31.2357, 30.0444, "member-1"))

	locations, err := r.GeoRadius(ctx, "technicians:geo", 31.2357, 30.0444, 1000, "m")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "member-1", locations[0].Name)

	require.NoError(t, r.GeoRemove(ctx, "technicians:geo", "member-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
