package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oookbaaa/Bridge-front-sub000/internal/api/middleware"
	"github.com/oookbaaa/Bridge-front-sub000/internal/api/response"
	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
)

// AdminHandler proxies the admin user-management endpoints. Role
// enforcement happens twice: the router guard keeps non-admins out of
// these routes, and the federation backend rechecks the token itself.
type AdminHandler struct {
	backend *backend.Client
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(client *backend.Client) *AdminHandler {
	return &AdminHandler{backend: client}
}

// Users handles GET /api/v1/admin/users
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())

	users, err := h.backend.Users(r.Context(), store.Token())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, users)
}

// PendingUsers handles GET /api/v1/admin/users/pending
func (h *AdminHandler) PendingUsers(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())

	users, err := h.backend.PendingUsers(r.Context(), store.Token())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, users)
}

// ApproveUser handles POST /api/v1/admin/users/{id}/approve
func (h *AdminHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())
	userID := mux.Vars(r)["id"]

	if err := h.backend.ApproveUser(r.Context(), store.Token(), userID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// RejectUser handles POST /api/v1/admin/users/{id}/reject
func (h *AdminHandler) RejectUser(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())
	userID := mux.Vars(r)["id"]

	if err := h.backend.RejectUser(r.Context(), store.Token(), userID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// DeleteUser handles DELETE /api/v1/admin/users/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())
	userID := mux.Vars(r)["id"]

	if err := h.backend.DeleteUser(r.Context(), store.Token(), userID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// UserStats handles GET /api/v1/admin/stats
func (h *AdminHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())

	stats, err := h.backend.UserStats(r.Context(), store.Token())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, stats)
}
