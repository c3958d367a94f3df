// Package cli implements the texlabel command-line interface.
//
// This package provides commands for compiling quantity keys into LaTeX
// labels, rendering TOML batch manifests, browsing the token dictionaries,
// and running the HTTP preview server. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Compile one m,c,s key into a label
//   - batch: Compile every label in a TOML manifest
//   - catalog: List the token dictionaries
//   - species: Preview a species substitution
//   - serve: Run the HTTP label preview server
//   - tui: Interactively browse and compose labels
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/heliolabs/texlabel/pkg/buildinfo"
)

// appName is the application name used for display and completion scripts.
const appName = "texlabel"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "texlabel compiles physical-quantity keys into LaTeX labels",
		Long:         `texlabel maps structured (measurement, component, species) keys for solar-wind plasma quantities into LaTeX axis labels, matching units strings, and filesystem-safe path tokens.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.speciesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}
