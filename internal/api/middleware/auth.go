package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/oookbaaa/Bridge-front-sub000/internal/api/apierr"
	"github.com/oookbaaa/Bridge-front-sub000/internal/guard"
	"github.com/oookbaaa/Bridge-front-sub000/internal/session"
)

type contextKey string

const (
	storeContextKey   contextKey = "session_store"
	visitorContextKey contextKey = "visitor_id"
)

// VisitorCookie carries the visitor identifier between requests
const VisitorCookie = "bridge_visitor"

// Visitor resolves the visitor identity (bearer header, then cookie,
// then a freshly issued cookie) and loads the initialized session store
// into the request context. Every route runs behind this.
func Visitor(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitorID := extractVisitorID(r)
			if visitorID == "" {
				visitorID = manager.NewVisitorID()
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookie,
					Value:    visitorID,
					Path:     "/",
					MaxAge:   86400 * 7,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			store := manager.Store(r.Context(), visitorID)

			ctx := r.Context()
			ctx = context.WithValue(ctx, storeContextKey, store)
			ctx = context.WithValue(ctx, visitorContextKey, visitorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth guards member-only routes. Unauthenticated visitors get a
// 401 carrying the redirect target instead of protected content.
func RequireAuth(fallback string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := GetStore(r.Context())
			switch d := guard.RequireAuth(store, fallback); d.Action {
			case guard.ActionRender:
				next.ServeHTTP(w, r)
			case guard.ActionRedirect:
				apierr.WriteError(w, apierr.NewUnauthorizedError(d.RedirectTo))
			default:
				apierr.WriteError(w, apierr.NewUnauthorizedError(fallback))
			}
		})
	}
}

// RequireRole guards routes needing a specific role. A wrong role yields
// the access-denied view; the visitor keeps their session.
func RequireRole(fallback, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := GetStore(r.Context())
			switch d := guard.RequireRole(store, fallback, role); d.Action {
			case guard.ActionRender:
				next.ServeHTTP(w, r)
			case guard.ActionDeny:
				apierr.WriteError(w, apierr.NewAccessDeniedError())
			case guard.ActionRedirect:
				apierr.WriteError(w, apierr.NewUnauthorizedError(d.RedirectTo))
			default:
				apierr.WriteError(w, apierr.NewUnauthorizedError(fallback))
			}
		})
	}
}

// PublicOnly guards login and registration routes: visitors who already
// hold a session are sent to the destination and get no content.
func PublicOnly(destination string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := GetStore(r.Context())
			switch d := guard.PublicOnly(store, destination); d.Action {
			case guard.ActionRender:
				next.ServeHTTP(w, r)
			case guard.ActionRedirect:
				w.Header().Set("Location", d.RedirectTo)
				w.WriteHeader(http.StatusSeeOther)
			default:
				w.WriteHeader(http.StatusServiceUnavailable)
			}
		})
	}
}

// GetStore returns the visitor's session store from the request context
func GetStore(ctx context.Context) *session.Store {
	store, _ := ctx.Value(storeContextKey).(*session.Store)
	return store
}

// GetVisitorID returns the visitor identifier from the request context
func GetVisitorID(ctx context.Context) string {
	visitorID, _ := ctx.Value(visitorContextKey).(string)
	return visitorID
}

// extractVisitorID extracts the visitor identity from the request
func extractVisitorID(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie(VisitorCookie)
	if err == nil {
		return cookie.Value
	}

	return ""
}
