package admin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/forms"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

var editForm forms.Sweet

var editCmd = &cobra.Command{
	Use:   "edit <sweet-id>",
	Short: "Change a sweet's details",
	Long: `Replaces the details of a sweet. Fields without a flag keep their current value.

The current values are read from a fresh copy of the inventory.`,
	Example:     `  sweetctl admin edit sweet-001 --price 5`,
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route(router.PathAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		c, err := controller(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.Refresh(cmd.Context()); err != nil {
			return err
		}
		current, ok := c.Find(id)
		if !ok {
			return &sdk.ValidationError{Field: "id", Message: fmt.Sprintf("No sweet with ID %s", id)}
		}

		form := mergeEdit(cmd, forms.SweetFrom(current), editForm)
		return applied(cmd, c, c.Update(cmd.Context(), id, form), "Updated %s", id)
	},
}

func init() {
	bindSweetFlags(editCmd, &editForm)
}

// mergeEdit overlays the flags the user actually passed onto current.
func mergeEdit(cmd *cobra.Command, current, flags forms.Sweet) forms.Sweet {
	if cmd.Flags().Changed("name") {
		current.Name = flags.Name
	}
	if cmd.Flags().Changed("category") {
		current.Category = flags.Category
	}
	if cmd.Flags().Changed("price") {
		current.Price = flags.Price
	}
	if cmd.Flags().Changed("quantity") {
		current.Quantity = flags.Quantity
	}
	return current
}
