package auth

import (
	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of SweetShelf",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := accountService(cmd.Context())
		if err != nil {
			return err
		}
		if err := svc.Logout(); err != nil {
			return err
		}
		cmdutil.Config(cmd.Context()).Notifier.Success("Logged out successfully")
		return nil
	},
}
