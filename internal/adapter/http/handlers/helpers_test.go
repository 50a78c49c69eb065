package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cablequote/internal/adapter/http/middleware"
	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	agentSession = entities.Session{Token: "tok-agent", Email: "agent@cable.com", Role: entities.RoleMiniAgent, CreatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	adminSession = entities.Session{Token: "tok-admin", Email: "admin@cable.com", Role: entities.RoleSuperAdmin, CreatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
)

// newRouter returns a test engine that attaches s to every request, or no
// session at all when s is nil.
func newRouter(s *entities.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if s != nil {
		r.Use(func(c *gin.Context) {
			middleware.SetSession(c, *s)
			c.Next()
		})
	}
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]any](t, w)["code"].(string)
}

// result returns a closed channel holding res, like the export use case.
func result(res usecase.ExportResult) <-chan usecase.ExportResult {
	ch := make(chan usecase.ExportResult, 1)
	ch <- res
	close(ch)
	return ch
}
