// Package cli implements the buttonstate command line tool.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "buttonstate",
		Short: "Reconcile button loading, disabled and display state into HTML",
		Long: `buttonstate binds a loading/disabled/visible state to the elements matched by a
selector and writes the reconciled document.

Options files use the same sparse tree as the library: state, loading.class,
loading.html, loading.expr, loading.engine, loading.icon, disabled.class,
display.show.class and display.hide.class.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

// Execute runs the root command
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
