package memory

import (
	"context"
	"sync"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
)

type sessionEntry struct {
	session   entities.Session
	expiresAt time.Time
}

func (e sessionEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// SessionRepository keeps sessions in a map. Expired entries are dropped on
// read and swept on every save.
type SessionRepository struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]sessionEntry
}

var _ interfaces.ISessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a store whose sessions live for ttl after
// their last save. A zero ttl never expires.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]sessionEntry),
	}
}

func (r *SessionRepository) Save(_ context.Context, s entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	e := sessionEntry{session: copySession(s)}
	if r.ttl > 0 {
		e.expiresAt = now.Add(r.ttl)
	}
	r.sessions[s.Token] = e
	return nil
}

func (r *SessionRepository) Get(_ context.Context, token string) (entities.Session, error) {
	r.mu.RLock()
	e, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return entities.Session{}, nil
	}

	now := r.now()
	if e.expired(now) {
		r.mu.Lock()
		// A concurrent Save may have refreshed the entry since the read.
		if cur, ok := r.sessions[token]; ok && cur.expired(now) {
			delete(r.sessions, token)
		}
		r.mu.Unlock()
		return entities.Session{}, nil
	}
	return copySession(e.session), nil
}

// sweep drops expired entries. Callers hold the write lock.
func (r *SessionRepository) sweep(now time.Time) {
	for token, e := range r.sessions {
		if e.expired(now) {
			delete(r.sessions, token)
		}
	}
}

func (r *SessionRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

// copySession detaches the line items so callers never share the stored slice.
func copySession(s entities.Session) entities.Session {
	s.Draft.LineItems = append(make([]entities.LineItem, 0, len(s.Draft.LineItems)), s.Draft.LineItems...)
	return s
}
