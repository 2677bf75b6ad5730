package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movies-api/pkg/utils"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	allowed := []string{"http://localhost:8080"}

	tests := []struct {
		name        string
		method      string
		header      http.Header
		wantCode    int
		wantCalled  bool
		wantAllowed string
	}{
		{"no origin", http.MethodGet, nil, http.StatusOK, true, ""},
		{"allowed", http.MethodPost, http.Header{"Origin": {"http://localhost:8080"}}, http.StatusOK, true, "http://localhost:8080"},
		{"denied", http.MethodGet, http.Header{"Origin": {"http://localhost:3000"}}, http.StatusForbidden, false, ""},
		{"denied preflight", http.MethodOptions, http.Header{"Origin": {"http://evil.example"}, "Access-Control-Request-Method": {"PATCH"}}, http.StatusForbidden, false, ""},
		{"preflight", http.MethodOptions, http.Header{"Origin": {"http://localhost:8080"}, "Access-Control-Request-Method": {"PATCH"}}, http.StatusNoContent, false, "http://localhost:8080"},
		// OPTIONS without a request method is not a preflight
		{"plain options", http.MethodOptions, http.Header{"Origin": {"http://localhost:8080"}}, http.StatusOK, true, "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := CORS(allowed, zap.NewNop())(okHandler(&called))

			req := httptest.NewRequest(tt.method, "/movies", nil)
			for k, v := range tt.header {
				req.Header[k] = v
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if called != tt.wantCalled {
				t.Errorf("next called = %v, want %v", called, tt.wantCalled)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowed {
				t.Errorf("allow origin = %q, want %q", got, tt.wantAllowed)
			}
		})
	}
}

func TestCORSDeniedBody(t *testing.T) {
	called := false
	h := CORS(nil, zap.NewNop())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Origin", "http://127.0.0.1:5500")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "Not allowed by CORS") {
		t.Errorf("body = %q", rec.Body)
	}
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := Recover(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if logs.FilterMessage("PANIC recovered").Len() != 1 {
		t.Errorf("panic not logged: %v", logs.All())
	}
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/movies?x=1", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("HTTP request").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusCreated) || fields["bytes"] != int64(5) || fields["path"] != "/movies" {
		t.Errorf("fields = %v", fields)
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(utils.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2}, zap.NewNop())
	rl.now = func() time.Time { return now }

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatal("burst should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request over burst allowed")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("clients must have separate buckets")
	}

	now = now.Add(time.Second)
	if !rl.Allow("10.0.0.1") {
		t.Error("token should refill after a second")
	}

	now = now.Add(clientIdleTTL + time.Second)
	rl.Sweep()
	if len(rl.clients) != 0 {
		t.Errorf("idle clients kept: %d", len(rl.clients))
	}
}

func TestRateLimiterHandler(t *testing.T) {
	rl := NewRateLimiter(utils.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}, zap.NewNop())
	called := false
	h := rl.Handler(okHandler(&called))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/movies", nil))

	called = false
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/movies", nil))

	if first.Code != http.StatusOK || second.Code != http.StatusTooManyRequests {
		t.Errorf("codes = %d, %d", first.Code, second.Code)
	}
	if called {
		t.Error("limited request reached the handler")
	}
}
