package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	"github.com/oookbaaa/Bridge-front-sub000/internal/session"
)

type stubState struct {
	initialized   bool
	authenticated bool
	user          *model.User
}

func (s stubState) Initialized() bool     { return s.initialized }
func (s stubState) IsAuthenticated() bool { return s.authenticated }
func (s stubState) User() *model.User     { return s.user }

func playerUser() *model.User {
	return &model.User{ID: "1", Role: model.Role{Title: model.RolePlayer}}
}

func adminUser() *model.User {
	return &model.User{ID: "2", Role: model.Role{Title: model.RoleAdmin}}
}

func TestRequireAuth(t *testing.T) {
	t.Run("loading while uninitialized", func(t *testing.T) {
		d := RequireAuth(stubState{}, "/login")
		assert.Equal(t, ActionLoading, d.Action)
	})

	t.Run("redirects unauthenticated visitors", func(t *testing.T) {
		d := RequireAuth(stubState{initialized: true}, "/login")
		assert.Equal(t, ActionRedirect, d.Action)
		assert.Equal(t, "/login", d.RedirectTo)
	})

	t.Run("empty fallback uses the login path", func(t *testing.T) {
		d := RequireAuth(stubState{initialized: true}, "")
		assert.Equal(t, ActionRedirect, d.Action)
		assert.Equal(t, session.DefaultLoginPath, d.RedirectTo)
	})

	t.Run("renders for authenticated visitors", func(t *testing.T) {
		st := stubState{initialized: true, authenticated: true, user: playerUser()}
		d := RequireAuth(st, "/login")
		assert.Equal(t, ActionRender, d.Action)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("inherits auth decisions", func(t *testing.T) {
		d := RequireRole(stubState{}, "/login", model.RoleAdmin)
		assert.Equal(t, ActionLoading, d.Action)

		d = RequireRole(stubState{initialized: true}, "/login", model.RoleAdmin)
		assert.Equal(t, ActionRedirect, d.Action)
	})

	t.Run("denies the wrong role without redirecting", func(t *testing.T) {
		st := stubState{initialized: true, authenticated: true, user: playerUser()}
		d := RequireRole(st, "/login", model.RoleAdmin)
		assert.Equal(t, ActionDeny, d.Action)
		assert.Empty(t, d.RedirectTo)
	})

	t.Run("renders for the right role", func(t *testing.T) {
		st := stubState{initialized: true, authenticated: true, user: adminUser()}
		d := RequireRole(st, "/login", model.RoleAdmin)
		assert.Equal(t, ActionRender, d.Action)
	})

	t.Run("role comparison is case-insensitive", func(t *testing.T) {
		u := &model.User{ID: "3", Role: model.Role{Title: "admin"}}
		st := stubState{initialized: true, authenticated: true, user: u}
		d := RequireRole(st, "/login", model.RoleAdmin)
		assert.Equal(t, ActionRender, d.Action)
	})
}

func TestPublicOnly(t *testing.T) {
	t.Run("loading while uninitialized", func(t *testing.T) {
		d := PublicOnly(stubState{}, "/dashboard")
		assert.Equal(t, ActionLoading, d.Action)
	})

	t.Run("renders for anonymous visitors", func(t *testing.T) {
		d := PublicOnly(stubState{initialized: true}, "/dashboard")
		assert.Equal(t, ActionRender, d.Action)
	})

	t.Run("redirects signed-in visitors away", func(t *testing.T) {
		st := stubState{initialized: true, authenticated: true, user: playerUser()}
		d := PublicOnly(st, "/dashboard")
		assert.Equal(t, ActionRedirect, d.Action)
		assert.Equal(t, "/dashboard", d.RedirectTo)
	})

	t.Run("empty destination uses the dashboard", func(t *testing.T) {
		st := stubState{initialized: true, authenticated: true, user: playerUser()}
		d := PublicOnly(st, "")
		assert.Equal(t, ActionRedirect, d.Action)
		assert.Equal(t, DefaultDashboardPath, d.RedirectTo)
	})

	t.Run("a lingering user without token still redirects", func(t *testing.T) {
		// Half-cleared state: user present but not authenticated.
		// Public-only pages stay hidden until the user record is gone.
		st := stubState{initialized: true, authenticated: false, user: playerUser()}
		d := PublicOnly(st, "/dashboard")
		assert.Equal(t, ActionRedirect, d.Action)
	})
}
