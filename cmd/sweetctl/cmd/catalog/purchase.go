package catalog

import (
	"github.com/spf13/cobra"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
)

var purchaseCmd = &cobra.Command{
	Use:         "purchase <sweet-id>",
	Aliases:     []string{"buy"},
	Short:       "Buy one unit of a sweet",
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route(router.PathDashboard),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		model, err := newModel(cmd.Context())
		if err != nil {
			return err
		}
		reloadErr, err := cmdutil.SplitReload(model.Purchase(cmd.Context(), id))
		if err != nil {
			return err
		}

		cfg := cmdutil.Config(cmd.Context())
		if sweet, ok := model.Find(id); ok {
			cfg.Notifier.Success("Purchased %s (%d left)", sweet.Name, sweet.Quantity)
		} else {
			cfg.Notifier.Success("Purchased %s", id)
		}
		if reloadErr != nil {
			cmdutil.ReportReload(cmd.Context(), reloadErr)
		}
		return nil
	},
}
