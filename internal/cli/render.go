package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heliolabs/texlabel/pkg/label"
	"github.com/heliolabs/texlabel/pkg/labelset"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	per         string // denominator "m,c,s" key for ratio labels
	axnorm      string // axis-normalization flag: c, r, t, d
	description string // free-text prefix above the label
	multiline   bool   // put units on their own line
	jsonOut     bool   // emit labelset JSON instead of styled text
	name        string // label name recorded in JSON output
}

// renderCommand creates the render command for compiling one label.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <m,c,s>",
		Short: "Compile one quantity key into a LaTeX label",
		Long: `Compile a comma-separated (measurement, component, species) key into a
LaTeX label, its units string, and a filesystem-safe path token.

Empty fields are allowed: "b,x," is the x-component of the magnetic field
with no species. Append _err to the measurement for uncertainty labels.`,
		Example: `  texlabel render v,x,p
  texlabel render v,x,p --per n,,p
  texlabel render v_err,x,p --axnorm c --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.per, "per", "", "denominator key m,c,s; renders a ratio label")
	cmd.Flags().StringVar(&opts.axnorm, "axnorm", "", "axis normalization: c (column), r (row), t (total), d (density)")
	cmd.Flags().StringVar(&opts.description, "description", "", "free-text prefix above the label")
	cmd.Flags().BoolVar(&opts.multiline, "multiline", false, "place units on their own line")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit labelset JSON")
	cmd.Flags().StringVar(&opts.name, "name", "", "label name recorded in JSON output")

	return cmd
}

func (c *CLI) runRender(key string, opts *renderOpts) error {
	primary, err := label.ParseMCS(key)
	if err != nil {
		return err
	}

	buildOpts := label.Options{
		Axnorm:          opts.axnorm,
		Description:     opts.description,
		NewLineForUnits: opts.multiline,
	}
	if opts.per != "" {
		per, err := label.ParseMCS(opts.per)
		if err != nil {
			return err
		}
		buildOpts.Per = &per
	}

	l, err := label.Build(primary, buildOpts)
	if err != nil {
		return err
	}
	c.Logger.Debug("compiled label", "key", key, "path", l.Path())

	if opts.jsonOut {
		var s labelset.Set
		s.Add(labelset.FromLabel(opts.name, l))
		return labelset.Write(s, os.Stdout)
	}

	printLabel(os.Stdout, l)
	return nil
}

// printLabel writes the styled text form of a compiled label.
func printLabel(w io.Writer, l *label.Label) {
	printField(w, "tex", l.Tex())
	printField(w, "units", l.Units())
	printField(w, "path", l.Path())
	fmt.Fprintf(w, "%s %s\n", styleFieldName.Render(fmt.Sprintf("%-11s", "with units:")), styleHighlight.Render(l.WithUnits()))
}
