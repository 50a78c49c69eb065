package redisstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"cablequote/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

// fakeRedis implements the three commands the repository uses. Any other
// call panics on the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	failGet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	repo := NewSessionRepository(rdb, 8*time.Hour)

	created := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	draft := entities.NewQuoteDraft("0a1b2c3d-0000-0000-0000-000000000000", created)
	draft.CustomerID = "CUST001"
	draft.LineItems = []entities.LineItem{{ProductID: "CAB001", Quantity: 3}}
	s := entities.Session{Token: "tok-1", Email: "agent@cable.com", Role: entities.RoleMiniAgent, Draft: draft, CreatedAt: created}

	t.Run("unknown token returns zero session", func(t *testing.T) {
		got, err := repo.Get(ctx, "missing")
		if err != nil || got.Token != "" {
			t.Fatalf("expected zero session, got %+v %v", got, err)
		}
	})

	t.Run("save and load round trip", func(t *testing.T) {
		if err := repo.Save(ctx, s); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if rdb.ttls["session:tok-1"] != 8*time.Hour {
			t.Fatalf("ttl not applied: %s", rdb.ttls["session:tok-1"])
		}

		got, err := repo.Get(ctx, "tok-1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Email != s.Email || got.Role != s.Role || !got.CreatedAt.Equal(created) {
			t.Fatalf("unexpected session %+v", got)
		}
		if got.Draft.CustomerID != "CUST001" || len(got.Draft.LineItems) != 1 || got.Draft.LineItems[0].Quantity != 3 {
			t.Fatalf("draft not round-tripped: %+v", got.Draft)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.Delete(ctx, "tok-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		got, err := repo.Get(ctx, "tok-1")
		if err != nil || got.Token != "" {
			t.Fatalf("expected session to be gone, got %+v %v", got, err)
		}
	})

	t.Run("redis failure surfaces", func(t *testing.T) {
		rdb.failGet = errors.New("connection refused")
		defer func() { rdb.failGet = nil }()
		if _, err := repo.Get(ctx, "tok-1"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("corrupt payload", func(t *testing.T) {
		rdb.data["session:bad"] = "{not json"
		if _, err := repo.Get(ctx, "bad"); err == nil {
			t.Fatalf("expected unmarshal error")
		}
	})
}
