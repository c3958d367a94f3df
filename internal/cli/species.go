package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heliolabs/texlabel/pkg/label"
)

// speciesCommand creates the species command for previewing substitutions.
func (c *CLI) speciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "species <code>",
		Short: "Preview a species substitution",
		Long: `Rewrite a species composition into its LaTeX form. Compositions join
atomic codes with "+", e.g. "a+p1". Matching is longest-first; unmatched
fragments pass through unchanged.`,
		Example: `  texlabel species p1
  texlabel species a+p1
  texlabel species 3He`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, count := label.SubstituteSpecies(args[0])
			printField(os.Stdout, "tex", rendered)
			printField(os.Stdout, "species", fmt.Sprintf("%d", count))
			return nil
		},
	}
}
