package admin

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/inventory"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/view"
)

// AdminCmd is the parent command for inventory management
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the inventory (ADMIN role)",
	Long: `Commands for administrators: add, edit, delete and restock sweets.

Every change is followed by a full reload of the inventory, which is printed.`,
}

func init() {
	AdminCmd.AddCommand(listCmd)
	AdminCmd.AddCommand(addCmd)
	AdminCmd.AddCommand(editCmd)
	AdminCmd.AddCommand(deleteCmd)
	AdminCmd.AddCommand(restockCmd)
}

func controller(ctx context.Context) (*inventory.Controller, error) {
	client, err := cmdutil.SDKClient(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.NewController(client, cmdutil.Config(ctx).Logger), nil
}

func printInventory(cmd *cobra.Command, c *inventory.Controller) {
	view.Inventory(cmd.OutOrStdout(), c.Sweets())
}

// applied reports the outcome of a change. A reload failure after an applied
// change is shown but does not fail the command.
func applied(cmd *cobra.Command, c *inventory.Controller, err error, format string, args ...any) error {
	reloadErr, err := cmdutil.SplitReload(err)
	if err != nil {
		return err
	}
	cmdutil.Config(cmd.Context()).Notifier.Success(format, args...)
	if reloadErr != nil {
		cmdutil.ReportReload(cmd.Context(), reloadErr)
		return nil
	}
	printInventory(cmd, c)
	return nil
}
