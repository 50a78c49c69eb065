package interfaces

import (
	"context"
	"cablequote/internal/domain/entities"
)

// ISessionRepository stores logged-in sessions together with their draft.
// Get returns a zero Session and a nil error for an unknown or expired token.
type ISessionRepository interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
}
