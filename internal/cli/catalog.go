package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/heliolabs/texlabel/pkg/errors"
	"github.com/heliolabs/texlabel/pkg/label"
)

// catalogs maps catalog names to their dictionary views.
var catalogs = map[string]func() []label.CatalogEntry{
	"measurements": label.Measurements,
	"components":   label.Components,
	"units":        label.Units,
	"species":      label.Species,
	"templates":    label.Templates,
}

// catalogOrder fixes the display order when printing all catalogs.
var catalogOrder = []string{"measurements", "components", "species", "units", "templates"}

// catalogCommand creates the catalog command for listing token dictionaries.
func (c *CLI) catalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [measurements|components|species|units|templates]",
		Short: "List the built-in token dictionaries",
		Long: `List the built-in token dictionaries mapping short codes to LaTeX
fragments. With no argument, every dictionary is printed.

Codes absent from a dictionary are not errors at render time: unknown codes
pass through verbatim, and unknown units resolve to a visible sentinel.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: catalogOrder,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range catalogOrder {
					printCatalog(name, catalogs[name]())
				}
				return nil
			}
			entries, ok := catalogs[args[0]]
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no catalog named %q", args[0])
			}
			printCatalog(args[0], entries())
			return nil
		},
	}
}

// printCatalog renders one dictionary as a bordered table.
func printCatalog(name string, entries []label.CatalogEntry) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleDim).
		Headers("CODE", "LATEX").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTitle
			}
			if col == 0 {
				return styleHighlight
			}
			return styleValue
		})

	for _, e := range entries {
		t.Row(e.Code, e.TeX)
	}

	fmt.Fprintf(os.Stdout, "%s (%d entries)\n%s\n", styleTitle.Render(strings.ToUpper(name)), len(entries), t)
}
