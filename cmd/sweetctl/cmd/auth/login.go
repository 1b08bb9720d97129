package auth

import (
	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/forms"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to SweetShelf",
	Long: `Signs in with your email and password and stores the session token in
$SWEETSHELF_HOME/credentials.json.

Missing values are prompted for unless --non-interactive is set.`,
	Args:        cobra.NoArgs,
	Annotations: cmdutil.Route(router.PathLogin),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmdutil.Config(cmd.Context())

		email, err := valueOrPrompt(cmd, loginEmail, "Email", false)
		if err != nil {
			return err
		}
		password, err := valueOrPrompt(cmd, loginPassword, "Password", true)
		if err != nil {
			return err
		}

		svc, err := accountService(cmd.Context())
		if err != nil {
			return err
		}
		state, err := svc.Login(cmd.Context(), forms.Login{Email: email, Password: password})
		if err != nil {
			return err
		}

		cfg.Notifier.Success("Login successful")
		if state.IsAdmin() {
			cfg.Notifier.Info("Signed in with the %s role; `sweetctl admin list` manages the inventory", state.Role)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}
