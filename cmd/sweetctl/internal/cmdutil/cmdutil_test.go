package cmdutil

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/catalog"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/client"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/config"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

func commandWithStore(t *testing.T, route *router.Path, token sdk.Credential) *cobra.Command {
	t.Helper()
	provider := client.NewProvider(sdk.DefaultBaseURL, t.TempDir(), nil)
	provider.SetSessionStore(sdk.NewMemoryStore(token))

	cmd := &cobra.Command{Use: "probe"}
	if route != nil {
		cmd.Annotations = Route(*route)
	}
	cmd.SetContext(config.InjectConfig(context.Background(), &config.GlobalConfig{
		Logger:         zap.NewNop(),
		ClientProvider: provider,
	}))
	return cmd
}

func routeTo(p router.Path) *router.Path { return &p }

func TestCheckRoute(t *testing.T) {
	// {"role":"ADMIN"} and {"role":"USER"} payloads; signatures are never checked here.
	const admin = sdk.Credential("h.eyJyb2xlIjoiQURNSU4ifQ.s")
	const user = sdk.Credential("h.eyJyb2xlIjoiVVNFUiJ9.s")

	tests := []struct {
		name  string
		route *router.Path
		token sdk.Credential
		want  *router.RedirectError
	}{
		{"unrouted always runs", nil, "", nil},
		{"admin signed out", routeTo(router.PathAdmin), "", &router.RedirectError{From: router.PathAdmin, To: router.PathLogin}},
		{"admin as user", routeTo(router.PathAdmin), user, &router.RedirectError{From: router.PathAdmin, To: router.PathDashboard}},
		{"admin as admin", routeTo(router.PathAdmin), admin, nil},
		{"dashboard signed out", routeTo(router.PathDashboard), "", &router.RedirectError{From: router.PathDashboard, To: router.PathLogin}},
		{"login when signed in", routeTo(router.PathLogin), user, &router.RedirectError{From: router.PathLogin, To: router.PathDashboard}},
		{"register signed out", routeTo(router.PathRegister), "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRoute(commandWithStore(t, tt.route, tt.token))
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			var redirect *router.RedirectError
			require.ErrorAs(t, err, &redirect)
			assert.Equal(t, tt.want, redirect)
		})
	}
}

func TestRouteNotInherited(t *testing.T) {
	parent := &cobra.Command{Use: "parent", Annotations: Route(router.PathAdmin)}
	child := &cobra.Command{Use: "child"}
	parent.AddCommand(child)

	_, ok := RouteOf(child)
	assert.False(t, ok)
	p, ok := RouteOf(parent)
	assert.True(t, ok)
	assert.Equal(t, router.PathAdmin, p)
}

func TestRedirectHint(t *testing.T) {
	assert.Contains(t, RedirectHint(&router.RedirectError{From: router.PathAdmin, To: router.PathLogin}), "sweetctl auth login")
	assert.Contains(t, RedirectHint(&router.RedirectError{From: router.PathAdmin, To: router.PathDashboard}), "ADMIN")
	assert.Contains(t, RedirectHint(&router.RedirectError{From: router.PathLogin, To: router.PathDashboard}), "sweetctl auth logout")
}

func TestSplitReload(t *testing.T) {
	offline := &sdk.NetworkError{Op: "list sweets", Err: errors.New("connection refused")}

	reloadErr, err := SplitReload(catalog.Reloaded(offline))
	assert.NoError(t, err)
	assert.ErrorIs(t, reloadErr, offline)

	reloadErr, err = SplitReload(offline)
	assert.NoError(t, reloadErr)
	assert.ErrorIs(t, err, offline)

	reloadErr, err = SplitReload(nil)
	assert.NoError(t, reloadErr)
	assert.NoError(t, err)
}
