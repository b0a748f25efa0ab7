// Package guard makes route-guard decisions from session state.
// Guards never perform navigation themselves; they return explicit
// decisions for the caller (HTTP middleware, tests) to act on.
package guard

import (
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	"github.com/oookbaaa/Bridge-front-sub000/internal/session"
)

// DefaultDashboardPath is where public-only guards send signed-in visitors
const DefaultDashboardPath = "/dashboard"

// Action is the outcome of a guard evaluation
type Action int

const (
	// ActionRender renders the guarded content
	ActionRender Action = iota
	// ActionLoading renders a loading placeholder while the store initializes
	ActionLoading
	// ActionRedirect navigates away before rendering any content
	ActionRedirect
	// ActionDeny renders the access-denied view with back/home navigation;
	// the visitor is authenticated, just insufficiently privileged
	ActionDeny
)

// Decision is the result of evaluating a guard against session state
type Decision struct {
	Action     Action
	RedirectTo string
}

// SessionState is the view of the session store guards consult
type SessionState interface {
	Initialized() bool
	IsAuthenticated() bool
	User() *model.User
}

// RequireAuth guards content that needs an authenticated session.
// Unauthenticated visitors are redirected to the fallback path.
func RequireAuth(st SessionState, fallback string) Decision {
	if !st.Initialized() {
		return Decision{Action: ActionLoading}
	}
	if !st.IsAuthenticated() {
		if fallback == "" {
			fallback = session.DefaultLoginPath
		}
		return Decision{Action: ActionRedirect, RedirectTo: fallback}
	}
	return Decision{Action: ActionRender}
}

// RequireRole guards content that additionally needs a specific role.
// Role comparison is case-insensitive. A wrong role denies rather than
// redirects: the visitor holds a valid session.
func RequireRole(st SessionState, fallback, role string) Decision {
	d := RequireAuth(st, fallback)
	if d.Action != ActionRender {
		return d
	}
	if !st.User().Role.Is(role) {
		return Decision{Action: ActionDeny}
	}
	return Decision{Action: ActionRender}
}

// PublicOnly guards pages like login and registration that signed-in
// visitors should never see; it redirects them to the destination
// (default: the member dashboard) and renders nothing.
func PublicOnly(st SessionState, destination string) Decision {
	if !st.Initialized() {
		return Decision{Action: ActionLoading}
	}
	if st.User() != nil {
		if destination == "" {
			destination = DefaultDashboardPath
		}
		return Decision{Action: ActionRedirect, RedirectTo: destination}
	}
	return Decision{Action: ActionRender}
}
