package admin

import (
	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
)

var restockQuantity string

var restockCmd = &cobra.Command{
	Use:         "restock <sweet-id>",
	Short:       "Add units to a sweet's stock",
	Example:     `  sweetctl admin restock sweet-001 --quantity 25`,
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route(router.PathAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		c, err := controller(cmd.Context())
		if err != nil {
			return err
		}
		return applied(cmd, c, c.Restock(cmd.Context(), id, restockQuantity), "Restocked %s", id)
	},
}

func init() {
	restockCmd.Flags().StringVarP(&restockQuantity, "quantity", "q", "", "Units to add (positive whole number)")
}
