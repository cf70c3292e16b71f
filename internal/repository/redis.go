package repository

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store kept in a single Redis hash.
type RedisStore[T any] struct {
	client *redis.Client
	key    string
}

// NewRedisStore stores values under the hash "<prefix>:<name>".
func NewRedisStore[T any](client *redis.Client, prefix, name string) *RedisStore[T] {
	return &RedisStore[T]{
		client: client,
		key:    prefix + ":" + name,
	}
}

func (s *RedisStore[T]) Get(ctx context.Context, id string) (T, error) {
	var v T

	raw, err := s.client.HGet(ctx, s.key, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, ErrNotFound
	}
	if err != nil {
		return v, errors.Wrapf(err, "failed to read %s/%s", s.key, id)
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, errors.Wrapf(err, "failed to decode %s/%s", s.key, id)
	}
	return v, nil
}

func (s *RedisStore[T]) Put(ctx context.Context, id string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s/%s", s.key, id)
	}

	if err := s.client.HSet(ctx, s.key, id, raw).Err(); err != nil {
		return errors.Wrapf(err, "failed to write %s/%s", s.key, id)
	}
	return nil
}

func (s *RedisStore[T]) List(ctx context.Context) (map[string]T, error) {
	all, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", s.key)
	}

	out := make(map[string]T, len(all))
	for id, raw := range all {
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s/%s", s.key, id)
		}
		out[id] = v
	}
	return out, nil
}

func (s *RedisStore[T]) Delete(ctx context.Context, id string) error {
	if err := s.client.HDel(ctx, s.key, id).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete %s/%s", s.key, id)
	}
	return nil
}
