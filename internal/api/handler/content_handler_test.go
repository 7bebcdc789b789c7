package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nujjum/accessibility-api/internal/core/service"
)

func newContentEcho() *echo.Echo {
	e := echo.New()
	h := NewContentHandler(service.NewContentService())
	e.GET("/api/services", h.Services)
	e.GET("/api/i18n/:lang", h.Translations)
	return e
}

func TestContentHandler_Services(t *testing.T) {
	e := newContentEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	categories, ok := resp["categories"].([]any)
	if !ok || len(categories) != 6 {
		t.Fatalf("expected 6 categories, got %v", resp["categories"])
	}
}

func TestContentHandler_Translations_Normalization(t *testing.T) {
	e := newContentEcho()

	fetch := func(lang string) map[string]string {
		req := httptest.NewRequest(http.MethodGet, "/api/i18n/"+lang, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %q, got %d", lang, rec.Code)
		}
		var table map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
			t.Fatalf("invalid json for %q: %v", lang, err)
		}
		return table
	}

	arabic := fetch("ar")
	prefixed := fetch("AR-sa")
	if arabic["sos"] != prefixed["sos"] || arabic["title"] != prefixed["title"] {
		t.Error("expected AR-sa to serve the arabic table")
	}

	english := fetch("en")
	unknown := fetch("xx")
	if english["sos"] != unknown["sos"] || english["title"] != unknown["title"] {
		t.Error("expected unknown tags to fall back to english")
	}
	if english["sos"] != "Emergency SOS" {
		t.Errorf("unexpected english sos label: %q", english["sos"])
	}
}
