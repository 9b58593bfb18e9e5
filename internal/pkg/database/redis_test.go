package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("listing:proof:l1", "p1", time.Duration(0)).SetVal("OK")

	err := client.Set(context.Background(), "listing:proof:l1", "p1", 0)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SetNX(t *testing.T) {
	tests := []struct {
		name           string
		mockResult     bool
		mockError      error
		expectedResult bool
		expectedError  bool
	}{
		{name: "Key set successfully", mockResult: true, expectedResult: true},
		{name: "Key already exists", mockResult: false, expectedResult: false},
		{name: "Redis error", mockError: errors.New("connection reset"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}

			key := "listing:inflight:l1"
			if tt.mockError != nil {
				mock.ExpectSetNX(key, "a1", time.Duration(0)).SetErr(tt.mockError)
			} else {
				mock.ExpectSetNX(key, "a1", time.Duration(0)).SetVal(tt.mockResult)
			}

			result, err := client.SetNX(context.Background(), key, "a1", 0)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Get(t *testing.T) {
	t.Run("existing key", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		client := &RedisClient{Client: db}
		mock.ExpectGet("listing:proof:l1").SetVal("p1")

		value, err := client.Get(context.Background(), "listing:proof:l1")

		assert.NoError(t, err)
		assert.Equal(t, "p1", value)
	})

	t.Run("missing key", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		client := &RedisClient{Client: db}
		mock.ExpectGet("listing:proof:l2").RedisNil()

		_, err := client.Get(context.Background(), "listing:proof:l2")

		assert.ErrorIs(t, err, redis.Nil)
	})
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("listing:inflight:l1").SetVal(1)

	err := client.Delete(context.Background(), "listing:inflight:l1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, db, client.GetClient())
}
