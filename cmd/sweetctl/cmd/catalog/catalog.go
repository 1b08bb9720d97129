package catalog

import (
	"context"

	"github.com/spf13/cobra"

	shop "github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/catalog"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/cmdutil"
)

// CatalogCmd is the parent command for browsing and buying
var CatalogCmd = &cobra.Command{
	Use:     "catalog",
	Aliases: []string{"shop"},
	Short:   "Browse and purchase sweets",
	Long:    `Commands for signed-in customers: list and filter the catalog, and buy sweets.`,
}

func init() {
	CatalogCmd.AddCommand(listCmd)
	CatalogCmd.AddCommand(categoriesCmd)
	CatalogCmd.AddCommand(purchaseCmd)
}

func newModel(ctx context.Context) (*shop.Model, error) {
	client, err := cmdutil.SDKClient(ctx)
	if err != nil {
		return nil, err
	}
	return shop.NewModel(client, cmdutil.Config(ctx).Logger), nil
}

func loadModel(ctx context.Context) (*shop.Model, error) {
	model, err := newModel(ctx)
	if err != nil {
		return nil, err
	}
	if err := model.Load(ctx); err != nil {
		return nil, err
	}
	return model, nil
}
