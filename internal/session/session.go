// Package session holds the single "current company" pointer. Only one
// company can be logged in per store; a new login replaces the previous one.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the key the pointer lives under in Redis.
const DefaultKey = "cf_auth"

// ErrNoSession is returned by Get when no company is logged in.
var ErrNoSession = errors.New("no active session")

type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, companyID string) error
	Clear(ctx context.Context) error
}

// RedisStore keeps the pointer in a single Redis key.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Get(ctx context.Context) (string, error) {
	id, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) || (err == nil && id == "") {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Set(ctx context.Context, companyID string) error {
	return s.client.Set(ctx, s.key, companyID, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// MemoryStore keeps the pointer in process memory.
type MemoryStore struct {
	mu        sync.RWMutex
	companyID string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.companyID == "" {
		return "", ErrNoSession
	}
	return s.companyID, nil
}

func (s *MemoryStore) Set(_ context.Context, companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companyID = companyID
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companyID = ""
	return nil
}
