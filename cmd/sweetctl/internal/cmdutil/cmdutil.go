// Package cmdutil holds helpers shared by sweetctl subcommands.
package cmdutil

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/catalog"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/config"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

const routeAnnotation = "sweetctl/route"

// Route binds a command to a storefront path. Use as cobra.Command.Annotations.
func Route(path router.Path) map[string]string {
	return map[string]string{routeAnnotation: string(path)}
}

// RouteOf returns the path a command is bound to. Routes are not inherited.
func RouteOf(cmd *cobra.Command) (router.Path, bool) {
	v, ok := cmd.Annotations[routeAnnotation]
	if !ok {
		return "", false
	}
	return router.Path(v), true
}

// CheckRoute evaluates the guard for cmd's route against the stored credential.
// Unrouted commands always run.
func CheckRoute(cmd *cobra.Command) error {
	path, ok := RouteOf(cmd)
	if !ok {
		return nil
	}
	cfg := config.MustFromContext(cmd.Context())
	state, err := cfg.ClientProvider.State()
	if err != nil {
		return err
	}

	decision := router.Guard(path, state)
	cfg.Logger.Debug("route guard evaluated",
		zap.String("command", cmd.CommandPath()),
		zap.String("path", string(path)),
		zap.Bool("authenticated", state.IsAuthenticated),
		zap.String("role", state.Role),
		zap.Stringer("decision", decision),
	)
	if decision.Allowed() {
		return nil
	}
	return &router.RedirectError{From: path, To: decision.RedirectTo}
}

// RedirectHint names the command that fits where the guard wanted to go.
func RedirectHint(err *router.RedirectError) string {
	switch err.To {
	case router.PathLogin:
		return "run `sweetctl auth login` to sign in"
	case router.PathDashboard:
		if err.From == router.PathAdmin {
			return "sign in with an ADMIN account, or browse with `sweetctl catalog list`"
		}
		return "you are already signed in; run `sweetctl auth logout` first to switch accounts"
	default:
		return ""
	}
}

// Config returns the injected configuration.
func Config(ctx context.Context) *config.GlobalConfig {
	return config.MustFromContext(ctx)
}

// SDKClient returns the shared API client.
func SDKClient(ctx context.Context) (*sdk.Client, error) {
	client, err := Config(ctx).ClientProvider.SDKClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

// SessionStore returns the shared credential store.
func SessionStore(ctx context.Context) (sdk.SessionStore, error) {
	store, err := Config(ctx).ClientProvider.SessionStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}
	return store, nil
}

// SplitReload separates a reload that failed after an applied change from a
// failed change. At most one of the results is non-nil.
func SplitReload(err error) (reloadErr, mutationErr error) {
	if catalog.IsReloadError(err) {
		return err, nil
	}
	return nil, err
}

// ReportReload tells the user the change went through but the list could not be fetched.
func ReportReload(ctx context.Context, reloadErr error) {
	cfg := Config(ctx)
	cfg.Logger.Warn("reload after change failed", zap.Error(reloadErr))
	cfg.Notifier.Error(reloadErr, "Failed to load sweets")
	cfg.Notifier.Hint("the change was saved; list again once the API is reachable")
}
