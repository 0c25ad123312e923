package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type redisKeyValueStore struct {
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisKeyValueStore stores values under "<prefix>:<userID>". A zero ttl
// keeps keys until they are deleted.
func NewRedisKeyValueStore(rdb *goredis.Client, prefix string, ttl time.Duration) KeyValueStore {
	return &redisKeyValueStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *redisKeyValueStore) key(userID string) string {
	return s.prefix + ":" + userID
}

func (s *redisKeyValueStore) Get(ctx context.Context, userID string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key(userID), err)
	}
	return raw, nil
}

func (s *redisKeyValueStore) Set(ctx context.Context, userID string, value []byte) error {
	return s.rdb.Set(ctx, s.key(userID), value, s.ttl).Err()
}

func (s *redisKeyValueStore) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, s.key(userID)).Err()
}

func (s *redisKeyValueStore) GetAndDelete(ctx context.Context, userID string) ([]byte, error) {
	raw, err := s.rdb.GetDel(ctx, s.key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis getdel %s: %w", s.key(userID), err)
	}
	return raw, nil
}
