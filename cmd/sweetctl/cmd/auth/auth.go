package auth

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/account"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
)

// AuthCmd is the parent command for auth operations
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for signing in and out of SweetShelf and inspecting the stored session.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(tokenCmd)
}

func accountService(ctx context.Context) (*account.Service, error) {
	store, err := cmdutil.SessionStore(ctx)
	if err != nil {
		return nil, err
	}
	client, err := cmdutil.SDKClient(ctx)
	if err != nil {
		return nil, err
	}
	return account.NewService(client, store, cmdutil.Config(ctx).Logger), nil
}

// valueOrPrompt returns value, or asks for it when it is empty.
func valueOrPrompt(cmd *cobra.Command, value, label string, secret bool) (string, error) {
	if value != "" {
		return value, nil
	}
	prompter := cmdutil.Config(cmd.Context()).Prompter
	if secret {
		return prompter.Password(label)
	}
	return prompter.Input(label, "")
}
