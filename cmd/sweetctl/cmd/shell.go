package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/prompt"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/shell"
)

var shellStart string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the interactive storefront",
	Long: `Starts a menu-driven storefront. Pages are guarded the same way as the
subcommands: signed-out users land on the welcome page, customers on the
dashboard, and only ADMIN accounts reach the inventory page.

An expired session sends you back to the sign-in page.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmdutil.Config(cmd.Context())
		if cfg.Settings.NonInteractive {
			return errors.New("the shell needs an interactive terminal: " + prompt.ErrNonInteractive.Error())
		}

		store, err := cmdutil.SessionStore(cmd.Context())
		if err != nil {
			return err
		}
		client, err := cmdutil.SDKClient(cmd.Context())
		if err != nil {
			return err
		}

		sh := shell.New(shell.Deps{
			Store:    store,
			API:      client,
			Prompter: cfg.Prompter,
			Notifier: cfg.Notifier,
			Logger:   cfg.Logger,
		})
		return sh.Run(cmd.Context(), router.Normalize(router.Path(shellStart)))
	},
}

func init() {
	shellCmd.Flags().StringVar(&shellStart, "start", string(router.PathLanding), "Page to open first (/, /login, /register, /dashboard, /admin)")
}
