package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRecovery(t *testing.T) {
	handler := Recovery(quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestRequestLogging_SetsCorrelationID(t *testing.T) {
	handler := RequestLogging(quietLogger())(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/products", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	// An inbound correlation ID is propagated unchanged.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	req.Header.Set("X-Correlation-ID", "corr-42")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "corr-42", rec.Header().Get("X-Correlation-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(DefaultCORSConfig())(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
	req.Header.Set("Origin", "https://candebrilla.example")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	cfg := CORSConfig{
		AllowedOrigins: []string{"https://candebrilla.example"},
		Environment:    "production",
	}
	handler := CORS(cfg)(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://candebrilla.example")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "https://candebrilla.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuth(t *testing.T) {
	validate := func(token string) (*Claims, error) {
		if token == "good" {
			return &Claims{Email: "admin@candebrilla.com", Role: "admin"}, nil
		}
		return nil, errors.New("bad token")
	}

	var gotIdentity, gotRole string
	handler := Auth(validate)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity = IdentityFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "good", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"invalid token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/products", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	assert.Equal(t, "admin@candebrilla.com", gotIdentity)
	assert.Equal(t, "admin", gotRole)
}
