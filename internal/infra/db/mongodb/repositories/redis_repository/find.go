package redis_repository

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
)

func FindByKey(redisURL string, key string) (string, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("error fetching key %s from Redis: %w", key, err)
	}

	return value, nil
}

// FindBytesByKey returns the cached payload, decoding the base64 form
// used for binary exports. A cache miss returns nil bytes and no error.
func FindBytesByKey(redisURL string, key string, encoded bool) ([]byte, error) {
	value, err := FindByKey(redisURL, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	if !encoded {
		return []byte(value), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 payload: %w", err)
	}

	return decoded, nil
}

func KeyExists(redisURL string, key string) (bool, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	exists, err := redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("error checking existence of key %s: %w", key, err)
	}

	return exists > 0, nil
}
