package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
)

var categoriesCmd = &cobra.Command{
	Use:         "categories",
	Short:       "List the categories in the catalog",
	Args:        cobra.NoArgs,
	Annotations: cmdutil.Route(router.PathDashboard),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadModel(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range model.Categories() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}
