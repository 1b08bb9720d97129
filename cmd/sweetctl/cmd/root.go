package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/cmd/admin"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/cmd/auth"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/cmd/catalog"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/client"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/config"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/logger"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/notify"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/prompt"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/view"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

var (
	apiURL         string
	logLevel       string
	nonInteractive bool
)

// Hooks replaced by tests.
var (
	newPrompter = func() prompt.Prompter { return prompt.Terminal{} }
	sdkOptions  []sdk.ClientOption
	storeHook   func(*client.Provider)
)

var rootCmd = &cobra.Command{
	Use:   "sweetctl",
	Short: "SweetShelf CLI - browse, buy and manage sweets",
	Long: `sweetctl is the command-line storefront for SweetShelf. Customers browse and
purchase sweets; admins manage the inventory. Run without arguments for a quick
overview, or use 'sweetctl shell' for the interactive storefront.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runOverview,
}

// setup resolves configuration, injects it into the command context and
// applies the route guard to routed commands.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	settings, err := config.Resolve(config.Flags{
		APIURL:         apiURL,
		LogLevel:       logLevel,
		NonInteractive: nonInteractive,
	})
	if err != nil {
		return err
	}
	log, err := logger.New(settings.LogLevel)
	if err != nil {
		return err
	}

	provider := client.NewProvider(settings.APIURL, settings.Home, log, sdkOptions...)
	if storeHook != nil {
		storeHook(provider)
	}

	var prompter prompt.Prompter = prompt.Disabled{}
	if !settings.NonInteractive {
		prompter = newPrompter()
	}

	cfg := &config.GlobalConfig{
		Settings:       settings,
		Logger:         log,
		ClientProvider: provider,
		Notifier:       notify.New(cmd.OutOrStdout()),
		Prompter:       prompter,
	}
	cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
	log.Debug("configuration resolved",
		zap.String("api_url", settings.APIURL),
		zap.String("home", settings.Home),
		zap.String("config_file", settings.ConfigFile),
		zap.Bool("non_interactive", settings.NonInteractive),
	)

	return cmdutil.CheckRoute(cmd)
}

// runOverview shows the landing text when signed out and the catalog when signed in.
func runOverview(cmd *cobra.Command, _ []string) error {
	cfg := config.MustFromContext(cmd.Context())
	store, err := cfg.ClientProvider.SessionStore()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	nav := router.NewNavigator(func() sdk.AuthorizationState { return sdk.DeriveAuthorization(store) }, cfg.Notifier, cfg.Logger)
	nav.Handle(router.PathLanding, router.PageFunc(func(context.Context) (router.Path, error) {
		fmt.Fprintln(out, "SweetShelf - browse and buy sweets from the shop's live inventory.")
		cfg.Notifier.Hint("run `sweetctl auth login` to sign in or `sweetctl auth register` to create an account")
		return router.PathExit, nil
	}))
	nav.Handle(router.PathDashboard, router.PageFunc(func(ctx context.Context) (router.Path, error) {
		sdkClient, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return router.PathExit, router.Abort(err)
		}
		sweets, err := sdkClient.ListSweets(ctx)
		if err != nil {
			return router.PathExit, router.Abort(fmt.Errorf("failed to load sweets: %w", err))
		}
		view.Catalog(out, sweets)
		fmt.Fprintf(out, "%d sweets available. Run `sweetctl shell` to shop interactively.\n", len(sweets))
		return router.PathExit, nil
	}))
	return nav.Run(cmd.Context(), router.PathLanding)
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func reportError(out io.Writer, err error) {
	n := notify.New(out)
	n.Error(err, err.Error())

	var redirect *router.RedirectError
	switch {
	case errors.As(err, &redirect):
		if hint := cmdutil.RedirectHint(redirect); hint != "" {
			n.Hint("%s", hint)
		}
	case sdk.IsAuthError(err):
		n.Hint("run `sweetctl auth login` to sign in again")
	case errors.Is(err, prompt.ErrNonInteractive):
		n.Hint("pass the values as flags")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "SweetShelf API base URL (also set via SWEETSHELF_API_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (also set via SWEETSHELF_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via SWEETSHELF_NON_INTERACTIVE=1)")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(catalog.CatalogCmd)
	rootCmd.AddCommand(admin.AdminCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
