// Package health exposes liveness and readiness endpoints. Liveness only
// proves the process is serving; readiness runs every registered
// dependency check and fails closed.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const readinessTimeout = 5 * time.Second

// Checker probes a single dependency, returning nil when it is usable.
type Checker func(ctx context.Context) error

// Status is the reported state of the service or one of its dependencies.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Response is the body of both health endpoints.
type Response struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult reports one dependency's state.
type CheckResult struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Handler holds the registered dependency checkers.
type Handler struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

func NewHandler() *Handler {
	return &Handler{checkers: make(map[string]Checker)}
}

// Register adds a named dependency check. Registering the same name twice
// replaces the previous checker.
func (h *Handler) Register(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// LivenessHandler always reports up while the process can serve requests.
func (h *Handler) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, http.StatusOK, Response{
			Status:    StatusUp,
			Timestamp: time.Now().UTC(),
		})
	}
}

// ReadinessHandler runs all registered checks and returns 503 if any
// dependency is down, with per-check detail in the body.
func (h *Handler) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := h.runChecks(ctx)

		status := StatusUp
		code := http.StatusOK
		for _, result := range checks {
			if result.Status == StatusDown {
				status = StatusDown
				code = http.StatusServiceUnavailable
				break
			}
		}

		writeHealth(w, code, Response{
			Status:    status,
			Timestamp: time.Now().UTC(),
			Checks:    checks,
		})
	}
}

func (h *Handler) runChecks(ctx context.Context) map[string]CheckResult {
	h.mu.RLock()
	checkers := make(map[string]Checker, len(h.checkers))
	for name, c := range h.checkers {
		checkers[name] = c
	}
	h.mu.RUnlock()

	checks := make(map[string]CheckResult, len(checkers))
	for name, checker := range checkers {
		if err := checker(ctx); err != nil {
			checks[name] = CheckResult{Status: StatusDown, Error: err.Error()}
		} else {
			checks[name] = CheckResult{Status: StatusUp}
		}
	}
	return checks
}

func writeHealth(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
