package admin

import (
	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
)

var listCmd = &cobra.Command{
	Use:         "list",
	Short:       "Show the inventory",
	Args:        cobra.NoArgs,
	Annotations: cmdutil.Route(router.PathAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := controller(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.Refresh(cmd.Context()); err != nil {
			return err
		}
		printInventory(cmd, c)
		return nil
	},
}
