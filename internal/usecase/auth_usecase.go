package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
	logx "cablequote/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
)

// Credential is one row of the fixed login table.
type Credential struct {
	Email    string
	Password string
	Role     entities.Role
}

// DefaultCredentials is the built-in login table.
var DefaultCredentials = []Credential{
	{Email: "admin@cable.com", Password: "admin123", Role: entities.RoleSuperAdmin},
	{Email: "manager@cable.com", Password: "admin123", Role: entities.RoleAdmin},
	{Email: "sales@cable.com", Password: "sales123", Role: entities.RoleSalesRep},
	{Email: "agent@cable.com", Password: "agent123", Role: entities.RoleMiniAgent},
}

// IAuthUseCase resolves credentials to roles and manages sessions.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Logout(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (entities.Session, error)
}

type AuthUseCase struct {
	sessions    interfaces.ISessionRepository
	credentials map[string]Credential
	now         func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(sessions interfaces.ISessionRepository, credentials []Credential) *AuthUseCase {
	byEmail := make(map[string]Credential, len(credentials))
	for _, c := range credentials {
		byEmail[normalizeEmail(c.Email)] = c
	}
	return &AuthUseCase{
		sessions:    sessions,
		credentials: byEmail,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Login matches the email case-insensitively and the password exactly. A
// successful login opens a session with a fresh draft.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	cred, ok := u.credentials[normalizeEmail(email)]
	if !ok || cred.Password != password {
		logx.Warn().Str("email", normalizeEmail(email)).Msg("[auth][usecase] login rejected")
		return entities.Session{}, ErrInvalidCredentials
	}

	now := u.now()
	s := entities.Session{
		Token:     uuid.NewString(),
		Email:     normalizeEmail(cred.Email),
		Role:      cred.Role,
		Draft:     entities.NewQuoteDraft(uuid.NewString(), now),
		CreatedAt: now,
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.Session{}, err
	}

	logx.Info().Str("email", s.Email).Str("role", string(s.Role)).Msg("[auth][usecase] login")
	return s, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrSessionNotFound
	}
	return u.sessions.Delete(ctx, token)
}

func (u *AuthUseCase) Session(ctx context.Context, token string) (entities.Session, error) {
	return loadSession(ctx, u.sessions, token)
}

func loadSession(ctx context.Context, repo interfaces.ISessionRepository, token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	s, err := repo.Get(ctx, token)
	if err != nil {
		return entities.Session{}, err
	}
	if s.Token == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
