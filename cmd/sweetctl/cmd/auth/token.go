package auth

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
)

// tokenEnvVar is the variable the --shell forms export.
const tokenEnvVar = "SWEETSHELF_TOKEN"

var shellFormat string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print the stored session token",
	Long: `Prints the bearer token of the current session for use in scripts.

By default the raw token is printed. With --shell the output is a command that
exports it as SWEETSHELF_TOKEN:

  # POSIX shells (bash/zsh/sh)
  eval $(sweetctl auth token --shell posix)

  # Fish shell
  eval (sweetctl auth token --shell fish)

  # PowerShell
  sweetctl auth token --shell powershell | Invoke-Expression`,
	Args:        cobra.NoArgs,
	Annotations: cmdutil.Route(router.PathDashboard),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cmdutil.SessionStore(cmd.Context())
		if err != nil {
			return err
		}
		token, ok := store.Get()
		if !ok {
			return errNotLoggedIn
		}
		return printToken(cmd.OutOrStdout(), cmd.ErrOrStderr(), shellFormat, string(token))
	},
}

func init() {
	tokenCmd.Flags().StringVar(&shellFormat, "shell", "", "Print an export command instead: posix, fish, powershell")
}

func printToken(out, errOut io.Writer, format, token string) error {
	var usage string
	switch strings.ToLower(format) {
	case "":
		fmt.Fprintln(out, token)
		return nil
	case "posix", "bash", "zsh", "sh":
		usage = "eval $(sweetctl auth token --shell posix)"
		fmt.Fprintf(out, "export %s=%q\n", tokenEnvVar, token)
	case "fish":
		usage = "eval (sweetctl auth token --shell fish)"
		fmt.Fprintf(out, "set -x %s %q\n", tokenEnvVar, token)
	case "powershell", "pwsh", "ps1":
		usage = "sweetctl auth token --shell powershell | Invoke-Expression"
		fmt.Fprintf(out, "$env:%s=%q\n", tokenEnvVar, token)
	default:
		return fmt.Errorf("unsupported shell format: %s (supported: posix, fish, powershell)", format)
	}

	// Only print instructions if stdout is a TTY (interactive mode, not being piped/eval'd)
	if isTerminal(out) {
		fmt.Fprintln(errOut, "# Run this command to export the token:")
		fmt.Fprintf(errOut, "#   %s\n", usage)
	}
	return nil
}

// isTerminal checks if w is a terminal (TTY)
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
