package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

var (
	signedOut = sdk.AuthorizationState{}
	noRole    = sdk.AuthorizationState{IsAuthenticated: true}
	user      = sdk.AuthorizationState{IsAuthenticated: true, Role: sdk.RoleUser}
	admin     = sdk.AuthorizationState{IsAuthenticated: true, Role: sdk.RoleAdmin}
)

func TestGuard_PolicyTable(t *testing.T) {
	cases := []struct {
		path  Path
		state sdk.AuthorizationState
		want  Decision
	}{
		{PathLanding, signedOut, Allow},
		{PathLanding, user, RedirectTo(PathDashboard)},
		{PathLogin, signedOut, Allow},
		{PathLogin, user, RedirectTo(PathDashboard)},
		{PathLogin, admin, RedirectTo(PathDashboard)},
		{PathLogin, noRole, RedirectTo(PathDashboard)},
		{PathRegister, signedOut, Allow},
		{PathRegister, admin, RedirectTo(PathDashboard)},
		{PathDashboard, signedOut, RedirectTo(PathLogin)},
		{PathDashboard, noRole, Allow},
		{PathDashboard, user, Allow},
		{PathDashboard, admin, Allow},
		{PathAdmin, signedOut, RedirectTo(PathLogin)},
		{PathAdmin, noRole, RedirectTo(PathDashboard)},
		{PathAdmin, user, RedirectTo(PathDashboard)},
		{PathAdmin, admin, Allow},
		{"/unknown", signedOut, Allow},
		{"/unknown", admin, Allow},
	}
	for _, tc := range cases {
		t.Run(string(tc.path)+"/"+tc.state.Role, func(t *testing.T) {
			assert.Equal(t, tc.want, Guard(tc.path, tc.state))
		})
	}
}

func TestGuard_RoleOnlyCountsWhenSignedIn(t *testing.T) {
	// A role without a credential cannot happen via DeriveAuthorization, but the guard must not trust it.
	state := sdk.AuthorizationState{Role: sdk.RoleAdmin}
	assert.Equal(t, RedirectTo(PathLogin), Guard(PathAdmin, state))
}

func TestGuard_RoleMatchIsExact(t *testing.T) {
	state := sdk.AuthorizationState{IsAuthenticated: true, Role: "admin"}
	assert.Equal(t, RedirectTo(PathDashboard), Guard(PathAdmin, state))
}

func TestGuard_NormalizesPath(t *testing.T) {
	for _, p := range []Path{"/admin/", "/ADMIN", "/Admin?tab=stock", "admin", "/admin#top"} {
		assert.Equal(t, RedirectTo(PathLogin), Guard(p, signedOut), "path %q", p)
		assert.Equal(t, Allow, Guard(p, admin), "path %q", p)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, PathLanding, Normalize(""))
	assert.Equal(t, PathLanding, Normalize("/"))
	assert.Equal(t, PathLanding, Normalize("//"))
	assert.Equal(t, PathDashboard, Normalize(" /Dashboard/ "))
}

func TestDecision(t *testing.T) {
	assert.True(t, Allow.Allowed())
	assert.False(t, RedirectTo(PathLogin).Allowed())
	assert.Equal(t, "Allow", Allow.String())
	assert.Equal(t, "RedirectTo(/login)", RedirectTo(PathLogin).String())
}

func TestRedirectError(t *testing.T) {
	assert.Contains(t, (&RedirectError{From: PathAdmin, To: PathLogin}).Error(), "signed in")
	assert.Contains(t, (&RedirectError{From: PathAdmin, To: PathDashboard}).Error(), "ADMIN")
	assert.Contains(t, (&RedirectError{From: PathLogin, To: PathDashboard}).Error(), "signed out")
}
