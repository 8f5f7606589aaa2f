package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"takeout-api/internal/domain/flow"
	"takeout-api/internal/infra"
)

const keyPrefix = "cart:"

// RedisCartStore keeps in-progress wizard sessions in Redis as JSON, one key
// per session, expiring with the session TTL.
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

func (s *RedisCartStore) Find(ctx context.Context, sessionID string) (*flow.Wizard, error) {
	payload, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("cart session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read cart session", err)
	}

	var wizard flow.Wizard
	if err = json.Unmarshal(payload, &wizard); err != nil {
		return nil, infra.WrapRepoErr("cart session payload is corrupt", err)
	}
	if !wizard.Step.IsValid() {
		return nil, infra.WrapRepoErr("cart session payload is corrupt", nil)
	}
	return &wizard, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, w *flow.Wizard, ttl time.Duration) error {
	payload, err := json.Marshal(w)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart session", err)
	}
	if err = s.client.Set(ctx, keyPrefix+sessionID, payload, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write cart session", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete cart session", err)
	}
	return nil
}
