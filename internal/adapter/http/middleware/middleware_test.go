package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cablequote/internal/adapter/http/handlers/mocks"
	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRouter(auth usecase.IAuthUseCase, feature entities.Feature) *gin.Engine {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/v1/protected", Auth(auth), RequireFeature(feature), func(c *gin.Context) {
		s, _ := SessionFrom(c)
		c.String(http.StatusOK, s.Email)
	})
	return r
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIAuthUseCase(ctrl), entities.FeatureCatalog)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/protected", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIAuthUseCase(ctrl), entities.FeatureCatalog)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Session(gomock.Any(), "tok-1").Return(entities.Session{}, usecase.ErrSessionNotFound)
		r := newRouter(auth, entities.FeatureCatalog)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Session(gomock.Any(), "tok-1").Return(entities.Session{}, errors.New("redis down"))
		r := newRouter(auth, entities.FeatureCatalog)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("role without feature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Session(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1", Email: "sales@cable.com", Role: entities.RoleSalesRep}, nil)
		r := newRouter(auth, entities.FeatureAdminPanel)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Session(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1", Email: "admin@cable.com", Role: entities.RoleSuperAdmin}, nil)
		r := newRouter(auth, entities.FeatureAdminPanel)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "bearer  tok-1 ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "admin@cable.com" {
			t.Fatalf("expected 200 admin@cable.com, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
