// Package redisstore keeps sessions in Redis so several API instances can
// share them.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
	logx "cablequote/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type SessionRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ interfaces.ISessionRepository = (*SessionRepository)(nil)

// NewSessionRepository stores sessions that expire ttl after their last
// save. A zero ttl never expires.
func NewSessionRepository(rdb redis.Cmdable, ttl time.Duration) *SessionRepository {
	return &SessionRepository{rdb: rdb, ttl: ttl}
}

func (r *SessionRepository) sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (r *SessionRepository) Save(ctx context.Context, s entities.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		logx.Error().Err(err).Str("session", s.Token).Msg("[session][redis] failed to marshal session")
		return fmt.Errorf("marshal session: %w", err)
	}

	key := r.sessionKey(s.Token)
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("[session][redis] failed to save session")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (entities.Session, error) {
	key := r.sessionKey(token)

	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.Session{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("[session][redis] failed to load session")
		return entities.Session{}, fmt.Errorf("load session: %w", err)
	}

	var s entities.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("[session][redis] failed to unmarshal session")
		return entities.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	key := r.sessionKey(token)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("[session][redis] failed to delete session")
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
