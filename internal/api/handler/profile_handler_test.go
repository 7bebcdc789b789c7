package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nujjum/accessibility-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub service
// ---------------------------------------------------------------------------

type stubProfileService struct {
	createFn func(ctx context.Context, input ports.CreateProfileInput) (*ports.ProfileResult, error)
	listFn   func(ctx context.Context, limit int) (*ports.ListProfilesResult, error)
}

func (s *stubProfileService) Create(ctx context.Context, input ports.CreateProfileInput) (*ports.ProfileResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubProfileService) List(ctx context.Context, limit int) (*ports.ListProfilesResult, error) {
	return s.listFn(ctx, limit)
}

func newProfileEcho(svc ports.ProfileService) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewProfileHandler(svc)
	e.POST("/api/profile", h.Create)
	e.GET("/api/profile", h.List)
	return e
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestProfileHandler_Create_Success(t *testing.T) {
	stub := &stubProfileService{
		createFn: func(_ context.Context, input ports.CreateProfileInput) (*ports.ProfileResult, error) {
			if len(input.Profile.DisabilityType) != 1 || input.Profile.DisabilityType[0] != "visual" {
				t.Fatalf("unexpected disability types: %v", input.Profile.DisabilityType)
			}
			if input.Name != "Amal" {
				t.Fatalf("unexpected name: %q", input.Name)
			}
			return &ports.ProfileResult{ID: "abc123", Message: "Profile created"}, nil
		},
	}
	e := newProfileEcho(stub)

	body := strings.NewReader(`{"user":{"name":"Amal","profile":{"disability_type":["visual"]}}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/profile", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "abc123" || resp["message"] != "Profile created" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestProfileHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubProfileService{
		createFn: func(context.Context, ports.CreateProfileInput) (*ports.ProfileResult, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	e := newProfileEcho(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProfileHandler_Create_EmptyDisabilityType(t *testing.T) {
	stub := &stubProfileService{
		createFn: func(context.Context, ports.CreateProfileInput) (*ports.ProfileResult, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	e := newProfileEcho(stub)

	body := strings.NewReader(`{"user":{"profile":{"disability_type":[]}}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/profile", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestProfileHandler_Create_UnknownEnumValue(t *testing.T) {
	stub := &stubProfileService{
		createFn: func(context.Context, ports.CreateProfileInput) (*ports.ProfileResult, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	e := newProfileEcho(stub)

	body := strings.NewReader(`{"user":{"profile":{"disability_type":["visual"],"preferred_mode":"braille"}}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/profile", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestProfileHandler_List_Success(t *testing.T) {
	stub := &stubProfileService{
		listFn: func(_ context.Context, limit int) (*ports.ListProfilesResult, error) {
			if limit != 3 {
				t.Fatalf("expected limit 3, got %d", limit)
			}
			return &ports.ListProfilesResult{Items: []ports.ProfileItem{
				{ID: "p1", Name: "Amal", Profile: ports.DisabilityProfileInput{
					DisabilityType: []string{"visual"}, PreferredMode: "auto", Language: "en",
				}},
			}}, nil
		},
	}
	e := newProfileEcho(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/profile?limit=3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	items, ok := resp["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 item, got %v", resp["items"])
	}
	item := items[0].(map[string]any)
	if item["id"] != "p1" {
		t.Errorf("expected public id field, got %v", item)
	}
	if _, leaked := item["_id"]; leaked {
		t.Error("internal _id must not appear in responses")
	}
}

func TestProfileHandler_List_BadLimit(t *testing.T) {
	stub := &stubProfileService{
		listFn: func(context.Context, int) (*ports.ListProfilesResult, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	e := newProfileEcho(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/profile?limit=abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
