package admin

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/forms"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
)

var addForm forms.Sweet

var addCmd = &cobra.Command{
	Use:         "add",
	Short:       "Add a sweet to the inventory",
	Example:     `  sweetctl admin add --name "Kaju Katli" --category Indian --price 4.50 --quantity 20`,
	Args:        cobra.NoArgs,
	Annotations: cmdutil.Route(router.PathAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := controller(cmd.Context())
		if err != nil {
			return err
		}
		return applied(cmd, c, c.Create(cmd.Context(), addForm), "Added %s", strings.TrimSpace(addForm.Name))
	},
}

func init() {
	bindSweetFlags(addCmd, &addForm)
}

func bindSweetFlags(cmd *cobra.Command, f *forms.Sweet) {
	cmd.Flags().StringVar(&f.Name, "name", "", "Sweet name")
	cmd.Flags().StringVar(&f.Category, "category", "", "Category, e.g. Indian or Chocolate")
	cmd.Flags().StringVar(&f.Price, "price", "", "Unit price (non-negative number)")
	cmd.Flags().StringVar(&f.Quantity, "quantity", "", "Units in stock (non-negative whole number)")
}
