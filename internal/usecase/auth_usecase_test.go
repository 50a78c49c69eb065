package usecase

import (
	"context"
	"errors"
	"testing"

	"cablequote/internal/domain/entities"
	mock_interfaces "cablequote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		role     entities.Role
	}{
		{name: "super admin", email: "admin@cable.com", password: "admin123", role: entities.RoleSuperAdmin},
		{name: "admin", email: "manager@cable.com", password: "admin123", role: entities.RoleAdmin},
		{name: "sales rep", email: "sales@cable.com", password: "sales123", role: entities.RoleSalesRep},
		{name: "mini agent", email: "agent@cable.com", password: "agent123", role: entities.RoleMiniAgent},
		{name: "email trimmed and case-insensitive", email: "  Sales@Cable.COM ", password: "sales123", role: entities.RoleSalesRep},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			sessions := mock_interfaces.NewMockISessionRepository(ctrl)
			uc := NewAuthUseCase(sessions, DefaultCredentials)

			sessions.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Session{})).DoAndReturn(
				func(_ context.Context, s entities.Session) error {
					if s.Token == "" || s.Draft.ID == "" {
						t.Fatalf("expected token and draft id, got %+v", s)
					}
					if s.Draft.CurrentStep != entities.StepCustomerProject {
						t.Fatalf("expected fresh draft at step 1, got %d", s.Draft.CurrentStep)
					}
					return nil
				},
			)

			s, err := uc.Login(context.Background(), tc.email, tc.password)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Role != tc.role {
				t.Fatalf("expected %s, got %s", tc.role, s.Role)
			}
		})
	}

	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, DefaultCredentials)
		_, err := uc.Login(context.Background(), "admin@cable.com", "Admin123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, DefaultCredentials)
		_, err := uc.Login(context.Background(), "nobody@cable.com", "admin123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions, DefaultCredentials)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis"))

		_, err := uc.Login(context.Background(), "agent@cable.com", "agent123")
		if err == nil || err.Error() != "redis" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})
}

func TestAuthUseCase_Session(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Session(context.Background(), " ")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions, nil)
		sessions.EXPECT().Get(gomock.Any(), "tok").Return(entities.Session{}, nil)

		_, err := uc.Session(context.Background(), "tok")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions, nil)
		sessions.EXPECT().Get(gomock.Any(), "tok").Return(entities.Session{Token: "tok", Role: entities.RoleAdmin}, nil)

		s, err := uc.Session(context.Background(), "tok")
		if err != nil || s.Role != entities.RoleAdmin {
			t.Fatalf("unexpected result: %+v %v", s, err)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sessions := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewAuthUseCase(sessions, nil)
	sessions.EXPECT().Delete(gomock.Any(), "tok").Return(nil)

	if err := uc.Logout(context.Background(), " tok "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
