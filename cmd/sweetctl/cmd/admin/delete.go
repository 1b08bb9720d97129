package admin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <sweet-id>",
	Short: "Remove a sweet from the inventory",
	Long: `Deletes a sweet. You are asked to confirm unless --yes is given.
In non-interactive mode --yes is required.`,
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route(router.PathAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		cfg := cmdutil.Config(cmd.Context())

		if !deleteYes {
			ok, err := cfg.Prompter.Confirm(fmt.Sprintf("Delete %s? This cannot be undone", id), false)
			if err != nil {
				return err
			}
			if !ok {
				cfg.Notifier.Info("Delete cancelled")
				return nil
			}
		}

		c, err := controller(cmd.Context())
		if err != nil {
			return err
		}
		return applied(cmd, c, c.Delete(cmd.Context(), id), "Deleted %s", id)
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking for confirmation")
}
