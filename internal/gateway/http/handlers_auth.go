package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	"github.com/mohamed-achich/api-gateway/internal/gateway/service"
	"github.com/mohamed-achich/api-gateway/pkg/grpcx"
	"github.com/mohamed-achich/api-gateway/pkg/httpx"
	"github.com/mohamed-achich/api-gateway/pkg/slogx"
)

const maxBodyBytes = 1 << 20

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "username, email and password are required")
		return
	}

	identity, err := h.accounts.Register(r.Context(), domain.Registration{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeBackendError(w, r, err)
		return
	}

	pair, err := h.tokens.Login(r.Context(), identity)
	if err != nil {
		slogx.FromContext(r.Context()).Error("login after registration failed", "error", err)
		httpx.WriteError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pair)
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	identity, err := h.accounts.Validate(r.Context(), req.Username, req.Password)
	if err != nil {
		slogx.FromContext(r.Context()).Error("credential validation failed", "error", err)
		httpx.WriteError(w, r, http.StatusServiceUnavailable, "user directory unavailable")
		return
	}
	if identity == nil {
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}

	pair, err := h.tokens.Login(r.Context(), *identity)
	if err != nil {
		slogx.FromContext(r.Context()).Error("login failed", "error", err)
		httpx.WriteError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pair)
}

func (h *handlers) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RefreshToken == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "refresh_token is required")
		return
	}

	pair, err := h.tokens.Refresh(r.Context(), req.RefreshToken)
	switch {
	case errors.Is(err, service.ErrInvalidRefresh):
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid refresh token")
		return
	case errors.Is(err, service.ErrDirectoryUnavailable):
		httpx.WriteError(w, r, http.StatusServiceUnavailable, "user directory unavailable")
		return
	case err != nil:
		slogx.FromContext(r.Context()).Error("refresh failed", "error", err)
		httpx.WriteError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pair)
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if err := h.tokens.Logout(r.Context(), userID); err != nil {
		slogx.FromContext(r.Context()).Error("logout failed", "error", err, "user_id", userID)
		httpx.WriteError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeBackendError maps a gRPC error from a backend onto the external error
// shape. This is the single translation point for proxied calls.
func writeBackendError(w http.ResponseWriter, r *http.Request, err error) {
	t := grpcx.Translate(err)
	if t.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("backend call failed", "error", err, "status", t.StatusCode)
	}
	httpx.WriteError(w, r, t.StatusCode, t.Message)
}
