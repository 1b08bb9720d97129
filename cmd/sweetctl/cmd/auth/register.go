package auth

import (
	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/forms"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
	registerConfirm  string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a SweetShelf account",
	Long: `Creates a customer account and signs in with it.

The password must be at least 6 characters and match --confirm-password.`,
	Args:        cobra.NoArgs,
	Annotations: cmdutil.Route(router.PathRegister),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmdutil.Config(cmd.Context())

		name, err := valueOrPrompt(cmd, registerName, "Name", false)
		if err != nil {
			return err
		}
		email, err := valueOrPrompt(cmd, registerEmail, "Email", false)
		if err != nil {
			return err
		}
		password, err := valueOrPrompt(cmd, registerPassword, "Password (at least 6 characters)", true)
		if err != nil {
			return err
		}
		confirm, err := valueOrPrompt(cmd, registerConfirm, "Confirm password", true)
		if err != nil {
			return err
		}

		svc, err := accountService(cmd.Context())
		if err != nil {
			return err
		}
		_, err = svc.Register(cmd.Context(), forms.Register{
			Name:            name,
			Email:           email,
			Password:        password,
			ConfirmPassword: confirm,
		})
		if err != nil {
			return err
		}

		cfg.Notifier.Success("Account created, you are signed in")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerConfirm, "confirm-password", "", "Password confirmation (prompted when omitted)")
}
