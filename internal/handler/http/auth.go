package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/auth"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/httputil"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/validator"
)

// AuthHandler handles the admin login endpoint.
type AuthHandler struct {
	gate   *auth.Gate
	logger *slog.Logger
}

// NewAuthHandler creates a new auth HTTP handler.
func NewAuthHandler(gate *auth.Gate, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		gate:   gate,
		logger: logger,
	}
}

// LoginRequest is the JSON request body for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	token, err := h.gate.Login(req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: LoginResponse{Token: token}})
}
