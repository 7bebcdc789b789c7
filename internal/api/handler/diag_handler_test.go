package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nujjum/accessibility-api/internal/core/ports"
	mongodb "github.com/nujjum/accessibility-api/internal/infrastructure/db/mongo"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubDiagStore struct {
	pingErr error
	cols    []string
	colsErr error
}

func (s *stubDiagStore) Create(context.Context, string, ports.Document) (string, error) {
	return "", errors.New("not used")
}

func (s *stubDiagStore) List(context.Context, string, ports.Document, int64) ([]ports.Document, error) {
	return nil, errors.New("not used")
}

func (s *stubDiagStore) Ping(context.Context) error { return s.pingErr }

func (s *stubDiagStore) Collections(context.Context) ([]string, error) {
	return s.cols, s.colsErr
}

type stubGuardPinger struct {
	err error
}

func (g *stubGuardPinger) Ping(context.Context) error { return g.err }

func runDiag(t *testing.T, h *DiagHandler) map[string]any {
	t.Helper()
	e := echo.New()
	e.GET("/test", h.Check)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("diagnostics must always return 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestDiagHandler_Connected(t *testing.T) {
	store := &stubDiagStore{cols: []string{"poduser", "sos"}}
	resp := runDiag(t, NewDiagHandler(store, &stubGuardPinger{}, true, true))

	if resp["backend"] != "running" {
		t.Errorf("unexpected backend: %v", resp["backend"])
	}
	if resp["database"] != "connected" || resp["connection_status"] != "connected" {
		t.Errorf("unexpected database fields: %v", resp)
	}
	if resp["database_url"] != "set" || resp["database_name"] != "set" {
		t.Errorf("unexpected env flags: %v", resp)
	}
	cols, _ := resp["collections"].([]any)
	if len(cols) != 2 {
		t.Errorf("expected 2 collections, got %v", resp["collections"])
	}
	if resp["redis"] != "connected" {
		t.Errorf("unexpected redis field: %v", resp["redis"])
	}
}

func TestDiagHandler_CollectionsCapped(t *testing.T) {
	store := &stubDiagStore{}
	for i := 0; i < 15; i++ {
		store.cols = append(store.cols, "c")
	}
	resp := runDiag(t, NewDiagHandler(store, nil, true, true))

	cols, _ := resp["collections"].([]any)
	if len(cols) != 10 {
		t.Errorf("expected collections capped at 10, got %d", len(cols))
	}
}

func TestDiagHandler_NotConfigured(t *testing.T) {
	resp := runDiag(t, NewDiagHandler(mongodb.Disconnected{}, nil, false, false))

	if resp["database"] != "not_configured" {
		t.Errorf("expected not_configured, got %v", resp["database"])
	}
	if resp["connection_status"] != "not_connected" {
		t.Errorf("unexpected connection_status: %v", resp["connection_status"])
	}
	if resp["database_url"] != "not_set" || resp["database_name"] != "not_set" {
		t.Errorf("unexpected env flags: %v", resp)
	}
	if resp["redis"] != "not_configured" {
		t.Errorf("unexpected redis field: %v", resp["redis"])
	}
}

func TestDiagHandler_PingFailureTruncated(t *testing.T) {
	longErr := errors.New("dial tcp 10.0.0.1:27017: connect: connection timed out after waiting for a very long time")
	store := &stubDiagStore{pingErr: longErr}
	resp := runDiag(t, NewDiagHandler(store, &stubGuardPinger{err: errors.New("redis gone")}, true, false))

	db, _ := resp["database"].(string)
	if len(db) > len("error: ")+50 {
		t.Errorf("expected truncated error detail, got %d chars", len(db))
	}
	if db == "" || db == "connected" {
		t.Errorf("expected an error field value, got %q", db)
	}
	redis, _ := resp["redis"].(string)
	if redis != "error: redis gone" {
		t.Errorf("unexpected redis field: %q", redis)
	}
}
