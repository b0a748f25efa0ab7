package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oookbaaa/Bridge-front-sub000/internal/api/middleware"
	"github.com/oookbaaa/Bridge-front-sub000/internal/api/request"
	"github.com/oookbaaa/Bridge-front-sub000/internal/api/response"
	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/session"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	backend *backend.Client
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(client *backend.Client) *AuthHandler {
	return &AuthHandler{backend: client}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.LoginIdentifier == "" || req.Password == "" {
		WriteError(w, NewInvalidRequestError("login identifier and password are required"))
		return
	}

	auth, err := h.backend.Login(r.Context(), req.LoginIdentifier, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	store := middleware.GetStore(r.Context())
	store.SetToken(r.Context(), auth.AccessToken)
	store.SetUser(r.Context(), &auth.User)

	response.JSON(w, http.StatusOK, response.AuthResponse{
		SessionToken: middleware.GetVisitorID(r.Context()),
		User:         auth.User,
	})
}

// Logout handles POST /api/v1/auth/logout. The session pair is purged
// and the client receives an explicit navigation instruction; logout is
// idempotent and never fails from the client's point of view.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())
	intent := store.Logout(r.Context())

	response.JSON(w, http.StatusOK, response.LogoutResponse{
		Navigation: response.NavigationFromIntent(intent),
	})
}

// Me handles GET /api/v1/auth/me, returning the cached session user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())

	user := store.User()
	if user == nil {
		WriteError(w, NewUnauthorizedError(session.DefaultLoginPath))
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// Profile handles GET /api/v1/auth/profile. Unlike Me, this revalidates
// the session against the federation backend and updates the cached user.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())

	user, err := store.RefreshProfile(r.Context(), h.backend)
	if err != nil {
		WriteError(w, err)
		return
	}
	if user == nil {
		// Token rejected by the backend, session was purged
		WriteError(w, NewUnauthorizedError(session.DefaultLoginPath))
		return
	}

	response.JSON(w, http.StatusOK, user)
}
