// File: services/planner/redisStore.go
package planner

import (
	"context"
	"time"

	"travelplanner/models"

	"github.com/go-redis/redis/v8"
)

const (
	statePrefix = "planner:state:"
	lockPrefix  = "planner:lock:"
)

// RedisStore shares submission state across server instances. The lock key
// expires with the session TTL so a crashed instance cannot pin a session busy.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Begin(ctx context.Context, sessionID string, state models.SubmissionState) error {
	acquired, err := s.client.SetNX(ctx, lockPrefix+sessionID, string(state), s.ttl).Result()
	if err != nil {
		return err
	}
	if !acquired {
		return ErrSubmissionInFlight
	}
	if err := s.client.Set(ctx, statePrefix+sessionID, string(state), s.ttl).Err(); err != nil {
		s.client.Del(ctx, lockPrefix+sessionID)
		return err
	}
	return nil
}

func (s *RedisStore) SetState(ctx context.Context, sessionID string, state models.SubmissionState) error {
	return s.client.Set(ctx, statePrefix+sessionID, string(state), s.ttl).Err()
}

func (s *RedisStore) Finish(ctx context.Context, sessionID string, state models.SubmissionState) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, statePrefix+sessionID, string(state), s.ttl)
		pipe.Del(ctx, lockPrefix+sessionID)
		return nil
	})
	return err
}

func (s *RedisStore) State(ctx context.Context, sessionID string) (models.SubmissionState, error) {
	data, err := s.client.Get(ctx, statePrefix+sessionID).Result()
	if err == redis.Nil {
		return models.StateIdle, nil
	}
	if err != nil {
		return "", err
	}
	return models.SubmissionState(data), nil
}
