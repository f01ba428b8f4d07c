package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gestora/anticipos/internal/domain"
	"github.com/gestora/anticipos/internal/infrastructure/auth"
)

// AuthHandler issues API tokens against the configured operator credentials.
type AuthHandler struct {
	jwtManager *auth.JWTManager
	username   string
	password   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(jwtManager *auth.JWTManager, username, password string) *AuthHandler {
	return &AuthHandler{
		jwtManager: jwtManager,
		username:   username,
		password:   password,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a login response.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges operator credentials for a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		writeError(w, http.StatusUnauthorized, "login failed", domain.ErrInvalidCredentials.Error())
		return
	}

	token, err := h.jwtManager.Generate(req.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
