package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/pipeline-api/internal/platform/timeutil"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	cfg := huma.DefaultConfig("HealthTest", "test")
	cfg.CreateHooks = nil
	Register(humachi.New(router, cfg))
	return router
}

func TestHealthJSON(t *testing.T) {
	fixed := time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.UTC)
	t.Cleanup(timeutil.SetClock(func() time.Time { return fixed }))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	newTestRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected exactly status and timestamp, got %v", body)
	}
	if body["status"] != "healthy" {
		t.Fatalf("expected status 'healthy', got %v", body["status"])
	}
	if body["timestamp"] != "2026-03-04T05:06:07.890Z" {
		t.Fatalf("unexpected timestamp %v", body["timestamp"])
	}
}

func TestHealthCBOR(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	newTestRouter().ServeHTTP(resp, req)

	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected application/cbor, got %s", ct)
	}
	var h HealthData
	if err := cbor.Unmarshal(resp.Body.Bytes(), &h); err != nil {
		t.Fatalf("cbor unmarshal: %v", err)
	}
	if h.Status != "healthy" || h.Timestamp == "" {
		t.Fatalf("unexpected payload %+v", h)
	}
}
