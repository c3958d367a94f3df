package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heliolabs/texlabel/pkg/labelset"
	"github.com/heliolabs/texlabel/pkg/manifest"
)

// batchOpts holds the command-line flags for the batch command.
type batchOpts struct {
	output string // output file; stdout when empty
}

// batchCommand creates the batch command for compiling a TOML manifest.
func (c *CLI) batchCommand() *cobra.Command {
	var opts batchOpts

	cmd := &cobra.Command{
		Use:   "batch <manifest.toml>",
		Short: "Compile every label in a TOML manifest",
		Long: `Compile every label defined in a TOML manifest into a labelset JSON
document. The manifest may also carry dictionary extensions ([species],
[measurements], [components], [units], [templates]) that apply to its own
labels without touching the built-in tables.`,
		Example: `  texlabel batch labels.toml
  texlabel batch labels.toml -o labels.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runBatch(path string, opts *batchOpts) error {
	p := newProgress(c.Logger)

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded manifest", "path", path, "labels", len(m.Labels))

	s, err := m.BuildAll()
	if err != nil {
		return err
	}

	if opts.output == "" {
		if err := labelset.Write(s, os.Stdout); err != nil {
			return err
		}
	} else {
		if err := labelset.WriteFile(s, opts.output); err != nil {
			return err
		}
		c.Logger.Debug("wrote labelset", "path", opts.output)
	}

	p.done(fmt.Sprintf("Compiled %d labels", len(s.Labels)))
	return nil
}
