package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
)

const keyPrefix = "booking:session:"

// RedisStore хранилище сессий в Redis: JSON со скользящим TTL и флаг оформления через SETNX
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище сессий в Redis
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, session *domain.BookingSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := s.client.Set(ctx, sessionKey(session.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrStorage, session.ID, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.BookingSession, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get %s: %v", ErrStorage, id, err)
	}

	var session domain.BookingSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &session, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id), processingKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del %s: %v", ErrStorage, id, err)
	}
	return nil
}

// AcquireProcessing атомарно ставит флаг оформления; false, если флаг уже стоит
func (s *RedisStore) AcquireProcessing(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, processingKey(id), time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: AcquireProcessing - setnx %s: %v", ErrStorage, id, err)
	}
	return ok, nil
}

// ReleaseProcessing снимает флаг оформления
func (s *RedisStore) ReleaseProcessing(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, processingKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: ReleaseProcessing - del %s: %v", ErrStorage, id, err)
	}
	return nil
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func processingKey(id string) string {
	return keyPrefix + id + ":processing"
}
