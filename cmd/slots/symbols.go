package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slots/internal/games/slots"
	"github.com/vovakirdan/tui-slots/internal/platform/tui"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the symbol catalog",
	Long:  `Shows every symbol a spin can draw, with its base and matched asset.`,
	Args:  cobra.NoArgs,
	RunE:  runSymbols,
}

var paytableCmd = &cobra.Command{
	Use:   "paytable",
	Short: "Show points per match size",
	Long: `Shows the points awarded for each count of identical symbols.
Position on the grid does not matter. Every qualifying symbol scores, and a
spin without any match costs points.`,
	Args: cobra.NoArgs,
	RunE: runPaytable,
}

func runSymbols(_ *cobra.Command, _ []string) error {
	fmt.Println(symbolTable(slots.NewCatalog()))
	return nil
}

func runPaytable(_ *cobra.Command, _ []string) error {
	fmt.Println(paytable())
	return nil
}

// symbolTable renders the catalog with each ID in its board color.
func symbolTable(c *slots.Catalog) string {
	symbols := c.Symbols()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Asset", "Matched asset")

	for _, s := range symbols {
		t.Row(string(s.ID), s.Asset, slots.ConnectedAsset(s.Asset))
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 0 && row >= 0 && row < len(symbols) {
			return tui.StyleFor(symbols[row].Color).Padding(0, 1)
		}
		return cellStyle
	})
	return t.String()
}

// paytable renders the point table plus the loss row.
func paytable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Matches", "Points")

	for _, row := range slots.PointTable() {
		t.Row(strconv.Itoa(row[0]), fmt.Sprintf("%+d", row[1]))
	}
	t.Row("none", fmt.Sprintf("%+d", slots.LossPoints))

	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})
	return t.String()
}
