package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func TestFilterHandlerAppliesPreferences(t *testing.T) {
	h := NewHandler(SampleProducts(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/products/filter",
		strings.NewReader(`{"occasion":"work"}`))
	rec := httptest.NewRecorder()

	h.Filter(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp FilterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 1 || len(resp.Products) != 1 {
		t.Fatalf("expected one match, got count=%d products=%d", resp.Count, len(resp.Products))
	}
	if resp.Products[0].Name != "Men's Formal Cotton Shirt" {
		t.Errorf("unexpected product: %s", resp.Products[0].Name)
	}
	// Предпочтения возвращаются эхом.
	if resp.Preferences.Occasion != "work" {
		t.Errorf("expected echoed occasion, got %+v", resp.Preferences)
	}
}

func TestFilterHandlerEmptyBodyIsBadRequest(t *testing.T) {
	h := NewHandler(SampleProducts(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/products/filter", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.Filter(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFilterHandlerEmptyPreferencesReturnsAll(t *testing.T) {
	h := NewHandler(SampleProducts(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/products/filter", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Filter(rec, req)

	var resp FilterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 3 {
		t.Fatalf("expected full catalog, got %d", resp.Count)
	}
}

func TestListHandlerReturnsCatalogWithNames(t *testing.T) {
	h := NewHandler(SampleProducts(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	var resp FilterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 3 {
		t.Fatalf("expected 3 products, got %d", resp.Count)
	}
	for _, p := range resp.Products {
		if p.Name == "" || p.Name != p.Title {
			t.Errorf("product %s: name alias not populated", p.ID)
		}
	}
}
