package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oookbaaa/Bridge-front-sub000/internal/api/handler"
	"github.com/oookbaaa/Bridge-front-sub000/internal/api/middleware"
	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/guard"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	"github.com/oookbaaa/Bridge-front-sub000/internal/session"
	"github.com/oookbaaa/Bridge-front-sub000/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Storage        storage.Storage
	SessionManager *session.Manager
	Backend        *backend.Client
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.Backend)
	wizardHandler := handler.NewWizardHandler(cfg.Storage, cfg.Backend)
	adminHandler := handler.NewAdminHandler(cfg.Backend)
	contentHandler := handler.NewContentHandler(cfg.Backend)

	// Create middleware
	visitorMiddleware := middleware.Visitor(cfg.SessionManager)
	requireAuth := middleware.RequireAuth(session.DefaultLoginPath)
	requireAdmin := middleware.RequireRole(session.DefaultLoginPath, model.RoleAdmin)
	publicOnly := middleware.PublicOnly(guard.DefaultDashboardPath)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(visitorMiddleware)

	// Auth routes: login is public-only, logout works for everyone
	login := api.PathPrefix("/auth/login").Subrouter()
	login.Use(publicOnly)
	login.HandleFunc("", authHandler.Login).Methods(http.MethodPost)

	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(requireAuth)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", authHandler.Profile).Methods(http.MethodGet)

	// Registration wizard routes (public-only: signed-in visitors are
	// redirected away from registration)
	register := api.PathPrefix("/register").Subrouter()
	register.Use(publicOnly)
	register.HandleFunc("/wizard", wizardHandler.Get).Methods(http.MethodGet)
	register.HandleFunc("/wizard", wizardHandler.Update).Methods(http.MethodPatch)
	register.HandleFunc("/wizard/next", wizardHandler.Next).Methods(http.MethodPost)
	register.HandleFunc("/wizard/previous", wizardHandler.Previous).Methods(http.MethodPost)
	register.HandleFunc("/wizard/jump", wizardHandler.Jump).Methods(http.MethodPost)
	register.HandleFunc("/submit", wizardHandler.Submit).Methods(http.MethodPost)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(requireAdmin)
	admin.HandleFunc("/users", adminHandler.Users).Methods(http.MethodGet)
	admin.HandleFunc("/users/pending", adminHandler.PendingUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/approve", adminHandler.ApproveUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/reject", adminHandler.RejectUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", adminHandler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", adminHandler.UserStats).Methods(http.MethodGet)

	// Content routes: reads are public, writes are admin-only
	api.HandleFunc("/tournaments", contentHandler.Tournaments).Methods(http.MethodGet)
	api.HandleFunc("/news", contentHandler.News).Methods(http.MethodGet)

	tournamentsAdmin := api.PathPrefix("/tournaments").Subrouter()
	tournamentsAdmin.Use(requireAdmin)
	tournamentsAdmin.HandleFunc("", contentHandler.CreateTournament).Methods(http.MethodPost)
	tournamentsAdmin.HandleFunc("/{id}", contentHandler.UpdateTournament).Methods(http.MethodPut)
	tournamentsAdmin.HandleFunc("/{id}", contentHandler.DeleteTournament).Methods(http.MethodDelete)

	newsAdmin := api.PathPrefix("/news").Subrouter()
	newsAdmin.Use(requireAdmin)
	newsAdmin.HandleFunc("", contentHandler.CreateNews).Methods(http.MethodPost)
	newsAdmin.HandleFunc("/{id}", contentHandler.UpdateNews).Methods(http.MethodPut)
	newsAdmin.HandleFunc("/{id}", contentHandler.DeleteNews).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
