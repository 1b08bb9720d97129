package auth

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

var errNotLoggedIn = errors.New("not logged in")

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	Long: `Shows whether a session is stored and what its token claims.

Claims are read without verifying the token signature. They decide which
commands sweetctl offers; the API still checks every request.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmdutil.Config(cmd.Context())
		store, err := cmdutil.SessionStore(cmd.Context())
		if err != nil {
			return err
		}

		token, ok := store.Get()
		if !ok {
			return errNotLoggedIn
		}
		state := sdk.DeriveAuthorization(store)
		claims := sdk.DecodeClaims(token)

		out := cmd.OutOrStdout()
		pterm.DefaultSection.WithWriter(out).Println("Authentication Status")

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "API\t%s\n", cfg.Settings.APIURL)
		fmt.Fprintf(w, "Signed in\t%t\n", state.IsAuthenticated)
		fmt.Fprintf(w, "Role\t%s\n", orDash(state.Role))
		if claims != nil {
			fmt.Fprintf(w, "User ID\t%s\n", orDash(firstNonEmpty(claims.UserID, claims.Subject)))
			fmt.Fprintf(w, "Email\t%s\n", orDash(claims.Email))
			fmt.Fprintf(w, "Name\t%s\n", orDash(claims.Name))
			if exp, ok := claims.ExpiresAt(); ok {
				fmt.Fprintf(w, "Expires\t%s\n", exp.Local().Format(time.RFC1123))
			}
		}
		w.Flush()

		if claims == nil {
			cfg.Notifier.Warning("The stored token could not be decoded; the API will decide whether it is valid")
		} else if exp, ok := claims.ExpiresAt(); ok && time.Now().After(exp) {
			cfg.Notifier.Warning("The stored token has expired; run `sweetctl auth login` to sign in again")
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
