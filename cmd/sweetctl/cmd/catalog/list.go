package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	shop "github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/catalog"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/view"
)

var (
	listSearch   string
	listCategory string
	listWhere    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sweets",
	Long: `Lists the catalog with stock levels.

--search matches name or category, ignoring case. --category must match exactly.
--where takes a bexpr expression over name, category, price and quantity, e.g.
  sweetctl catalog list --where 'price < 3 and quantity > 0'`,
	Args:        cobra.NoArgs,
	Annotations: cmdutil.Route(router.PathDashboard),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := shop.Filter{Search: listSearch, Category: listCategory, Where: listWhere}
		if _, err := filter.Compile(); err != nil {
			return err
		}

		model, err := loadModel(cmd.Context())
		if err != nil {
			return err
		}
		if err := model.SetFilter(filter); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		visible := model.Visible()
		if len(visible) == 0 {
			fmt.Fprintln(out, "No sweets found.")
		} else {
			view.Catalog(out, visible)
		}
		fmt.Fprintln(out, model.Summary())
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Match name or category (case-insensitive substring)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Show only this category (exact match)")
	listCmd.Flags().StringVar(&listWhere, "where", "", "bexpr filter expression (e.g. price < 3)")
}
