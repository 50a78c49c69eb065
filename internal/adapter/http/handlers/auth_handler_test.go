package handlers

import (
	"errors"
	"net/http"
	"testing"

	"cablequote/internal/adapter/http/dto/response"
	"cablequote/internal/adapter/http/handlers/mocks"
	"cablequote/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl))

		r := newRouter(nil)
		r.POST("/v1/auth/login", h.Login)

		w := perform(r, http.MethodPost, "/v1/auth/login", `{"email":"agent@cable.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "agent@cable.com", "nope").Return(agentSession, usecase.ErrInvalidCredentials)
		h := NewAuthHandler(uc)

		r := newRouter(nil)
		r.POST("/v1/auth/login", h.Login)

		w := perform(r, http.MethodPost, "/v1/auth/login", `{"email":"agent@cable.com","password":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("success returns token and features", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "agent@cable.com", "agent123").Return(agentSession, nil)
		h := NewAuthHandler(uc)

		r := newRouter(nil)
		r.POST("/v1/auth/login", h.Login)

		w := perform(r, http.MethodPost, "/v1/auth/login", `{"email":"agent@cable.com","password":"agent123"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := decode[response.SessionResponse](t, w)
		if got.Token != agentSession.Token || got.Role != "Mini Agent" {
			t.Fatalf("unexpected body %+v", got)
		}
		if len(got.Features) != 5 {
			t.Fatalf("expected 5 features for a mini agent, got %v", got.Features)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl))

		r := newRouter(nil)
		r.GET("/v1/auth/me", h.Me)

		w := perform(r, http.MethodGet, "/v1/auth/me", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token is not echoed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl))

		r := newRouter(&adminSession)
		r.GET("/v1/auth/me", h.Me)

		w := perform(r, http.MethodGet, "/v1/auth/me", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := decode[response.SessionResponse](t, w)
		if got.Token != "" || got.Email != adminSession.Email {
			t.Fatalf("unexpected body %+v", got)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("deletes session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Logout(gomock.Any(), agentSession.Token).Return(nil)
		h := NewAuthHandler(uc)

		r := newRouter(&agentSession)
		r.POST("/v1/auth/logout", h.Logout)

		w := perform(r, http.MethodPost, "/v1/auth/logout", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Logout(gomock.Any(), agentSession.Token).Return(errors.New("redis down"))
		h := NewAuthHandler(uc)

		r := newRouter(&agentSession)
		r.POST("/v1/auth/logout", h.Logout)

		w := perform(r, http.MethodPost, "/v1/auth/logout", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
