// Package view renders sweets as terminal tables.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/catalog"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

const barWidth = 10

// Price formats a price the way the storefront shows it.
func Price(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// StockBar draws quantity as a ten-cell bar.
func StockBar(quantity int) string {
	pct := catalog.StockPercent(quantity)
	filled := pct * barWidth / 100
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled), pct)
}

// Catalog prints the shopper's table with stock badges.
func Catalog(w io.Writer, sweets []sdk.Sweet) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tQTY\tSTOCK\tLEVEL")
	for _, s := range sweets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			s.ID, s.Name, dash(s.Category), Price(s.Price), s.Quantity, StockBar(s.Quantity), catalog.LevelOf(s.Quantity))
	}
	tw.Flush()
}

// Inventory prints the admin table.
func Inventory(w io.Writer, sweets []sdk.Sweet) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tQUANTITY\tUPDATED")
	for _, s := range sweets {
		updated := "-"
		if s.UpdatedAt != nil {
			updated = s.UpdatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", s.ID, s.Name, dash(s.Category), Price(s.Price), s.Quantity, updated)
	}
	tw.Flush()
}

// Option labels a sweet in a selection list.
func Option(s sdk.Sweet) string {
	return fmt.Sprintf("%s  %s (%s, %d left)", s.ID, s.Name, Price(s.Price), s.Quantity)
}

// IDFromOption recovers the sweet ID from an Option label.
func IDFromOption(option string) string {
	id, _, _ := strings.Cut(option, "  ")
	return id
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
