package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVaryAddsAccept(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Custom", "value")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("test body"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if got := resp.Header().Get("Vary"); got != "Accept" {
		t.Fatalf("expected Vary: Accept, got %q", got)
	}
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if resp.Header().Get("X-Custom") != "value" || resp.Body.String() != "test body" {
		t.Fatal("expected downstream response to be preserved")
	}
}

func TestVaryCombinesWithCORS(t *testing.T) {
	h := Vary()(CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://example.com")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if !varyContains(resp.Header(), "Accept") || !varyContains(resp.Header(), "Origin") {
		t.Fatalf("expected Vary to contain Accept and Origin, got %v", resp.Header().Values("Vary"))
	}
}
