package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cablequote/internal/adapter/persistence/memory"
	"cablequote/internal/adapter/persistence/seed"
	"cablequote/internal/domain/entities"
	"cablequote/internal/infrastructure/export/filesink"

	"github.com/gin-gonic/gin"
)

type client struct {
	t      *testing.T
	router http.Handler
	token  string
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c *client) expect(method, path, body string, status int) map[string]any {
	c.t.Helper()
	w := c.do(method, path, body)
	if w.Code != status {
		c.t.Fatalf("%s %s: expected %d, got %d: %s", method, path, status, w.Code, w.Body.String())
	}
	out := map[string]any{}
	if ct := w.Header().Get("Content-Type"); len(w.Body.Bytes()) > 0 && ct == "application/json; charset=utf-8" && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			c.t.Fatalf("decode %s: %v", w.Body.String(), err)
		}
	}
	return out
}

func (c *client) login(email, password string) *client {
	c.t.Helper()
	body := c.expect(http.MethodPost, "/v1/auth/login", `{"email":"`+email+`","password":"`+password+`"}`, http.StatusOK)
	return &client{t: c.t, router: c.router, token: body["token"].(string)}
}

func newTestServer(t *testing.T) (*client, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	sink, err := filesink.New(dir)
	if err != nil {
		t.Fatalf("sink: %v", err)
	}
	h := NewHandlers(
		memory.NewProductRepository(seed.Products()),
		memory.NewCustomerRepository(seed.Customers()),
		memory.NewApprovalRepository(seed.Approvals()),
		memory.NewSessionRepository(time.Hour),
		memory.NewMetalPriceRepository(entities.DefaultMetalPrices()),
		sink,
	)
	return &client{t: t, router: NewRouter(h)}, dir
}

func TestRouter_PublicAndProtected(t *testing.T) {
	anon, _ := newTestServer(t)

	body := anon.expect(http.MethodGet, "/v1/ping", "", http.StatusOK)
	if body["message"] != "pong" {
		t.Fatalf("unexpected ping body %v", body)
	}

	anon.expect(http.MethodGet, "/v1/products", "", http.StatusUnauthorized)
	anon.expect(http.MethodPost, "/v1/auth/login", `{"email":"agent@cable.com","password":"wrong"}`, http.StatusUnauthorized)

	agent := anon.login("  Agent@Cable.com ", "agent123")
	me := agent.expect(http.MethodGet, "/v1/auth/me", "", http.StatusOK)
	if me["role"] != "Mini Agent" {
		t.Fatalf("unexpected me %v", me)
	}

	w := agent.do(http.MethodGet, "/v1/products/CAB003", "")
	if w.Code != http.StatusOK {
		t.Fatalf("product lookup: %d", w.Code)
	}
	agent.expect(http.MethodGet, "/v1/products/categories", "", http.StatusOK)
	agent.expect(http.MethodGet, "/v1/customers/CUST404", "", http.StatusNotFound)
	agent.expect(http.MethodGet, "/v1/admin/approvals", "", http.StatusForbidden)

	agent.expect(http.MethodPost, "/v1/auth/logout", "", http.StatusNoContent)
	agent.expect(http.MethodGet, "/v1/auth/me", "", http.StatusUnauthorized)
}

func TestRouter_QuoteWorkflow(t *testing.T) {
	anon, dir := newTestServer(t)
	agent := anon.login("agent@cable.com", "agent123")

	agent.expect(http.MethodPost, "/v1/quote/next", "", http.StatusConflict)
	agent.expect(http.MethodPut, "/v1/quote/customer", `{"customer_id":"CUST002"}`, http.StatusOK)
	agent.expect(http.MethodPut, "/v1/quote/project", `{"project_name":"Substation","notes":"north gate"}`, http.StatusOK)
	agent.expect(http.MethodPost, "/v1/quote/items", `{"product_id":"CAB002"}`, http.StatusConflict)

	agent.expect(http.MethodPost, "/v1/quote/next", "", http.StatusOK)
	agent.expect(http.MethodPost, "/v1/quote/items", `{"product_id":"CAB002","quantity":3}`, http.StatusOK)
	draft := agent.expect(http.MethodPost, "/v1/quote/items", `{"product_id":"CAB002"}`, http.StatusOK)
	items := draft["items"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["quantity"].(float64) != 4 {
		t.Fatalf("expected merged line of 4, got %v", items)
	}
	agent.expect(http.MethodPost, "/v1/quote/export", "", http.StatusConflict)

	agent.expect(http.MethodPost, "/v1/quote/next", "", http.StatusOK)
	priced := agent.expect(http.MethodGet, "/v1/quote/pricing", "", http.StatusOK)
	if priced["total"].(float64) != 1105.48 {
		t.Fatalf("unexpected total %v", priced["total"])
	}

	agent.expect(http.MethodPost, "/v1/quote/next", "", http.StatusOK)
	agent.expect(http.MethodPost, "/v1/quote/next", "", http.StatusConflict)

	w := agent.do(http.MethodPost, "/v1/quote/export?format=xlsx", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export: %d %s", w.Code, w.Body.String())
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.Base(w.Header().Get("X-Document-Location")))); err != nil {
		t.Fatalf("exported document not stored: %v", err)
	}

	approval := agent.expect(http.MethodPost, "/v1/quote/approval", "", http.StatusCreated)
	if approval["status"] != "pending" || approval["amount"].(float64) != 1105.48 {
		t.Fatalf("unexpected approval %v", approval)
	}

	next := agent.expect(http.MethodPost, "/v1/quote/complete", "", http.StatusOK)
	if next["step"].(float64) != 1 || len(next["items"].([]any)) != 0 {
		t.Fatalf("expected a fresh draft, got %v", next)
	}

	admin := anon.login("admin@cable.com", "admin123")
	decided := admin.expect(http.MethodPost, "/v1/admin/approvals/"+approval["id"].(string)+"/approve", "", http.StatusOK)
	if decided["decided_by"] != "admin@cable.com" {
		t.Fatalf("unexpected decision %v", decided)
	}
	admin.expect(http.MethodPost, "/v1/admin/approvals/"+approval["id"].(string)+"/reject", "", http.StatusConflict)
}

func TestRouter_RoleGates(t *testing.T) {
	anon, _ := newTestServer(t)

	sales := anon.login("sales@cable.com", "sales123")
	sales.expect(http.MethodPost, "/v1/quote/approval", "", http.StatusForbidden)
	sales.expect(http.MethodPut, "/v1/admin/metal-prices", `{"copper_per_lb":9,"aluminum_per_lb":2}`, http.StatusForbidden)

	manager := anon.login("manager@cable.com", "admin123")
	prices := manager.expect(http.MethodPut, "/v1/admin/metal-prices", `{"copper_per_lb":9,"aluminum_per_lb":2}`, http.StatusOK)
	if prices["updated_by"] != "manager@cable.com" {
		t.Fatalf("unexpected prices %v", prices)
	}

	dash := manager.expect(http.MethodGet, "/v1/dashboard", "", http.StatusOK)
	if dash["role"] != "Admin" {
		t.Fatalf("unexpected dashboard %v", dash)
	}
	w := manager.do(http.MethodGet, "/v1/dashboard/export?format=pdf", "")
	if w.Code != http.StatusOK || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("dashboard export: %d", w.Code)
	}
}
