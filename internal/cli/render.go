package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-buttonstate"
	"github.com/goliatone/go-buttonstate/host/htmlhost"
	"github.com/goliatone/go-buttonstate/internal/optionsfile"
)

type renderFlags struct {
	selector string
	options  []string
	loading  bool
	disabled bool
	hide     bool
	out      string
	strict   bool
	verbose  bool
}

func newRenderCmd() *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render [file.html]",
		Short: "Apply button actions to an HTML document",
		Long: `Bind the elements matched by --selector, apply the requested actions and write
the reconciled HTML to stdout or --out.

Actions run in the order loading, disabled, hide. Passing a flag as false
(--loading=false) applies the opposite action. Without any action the current
state is rendered once.`,
		Example: `  buttonstate render --selector '#save' --options opts.yaml --loading page.html
  buttonstate render --selector '.btn' --hide --out hidden.html page.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, args[0])
		},
	}
	cmd.Flags().StringVarP(&flags.selector, "selector", "s", "", "CSS selector of the elements to bind")
	cmd.Flags().StringSliceVarP(&flags.options, "options", "o", nil, "JSON or YAML options file; repeat to layer, strongest first")
	cmd.Flags().BoolVar(&flags.loading, "loading", false, "Set loading (and disabled)")
	cmd.Flags().BoolVar(&flags.disabled, "disabled", false, "Set disabled")
	cmd.Flags().BoolVar(&flags.hide, "hide", false, "Hide the elements")
	cmd.Flags().StringVar(&flags.out, "out", "", "Write the document to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail on option paths the renderer does not use")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log every render pass to stderr")
	_ = cmd.MarkFlagRequired("selector")
	return cmd
}

func runRender(cmd *cobra.Command, flags *renderFlags, input string) error {
	stderr := cmd.ErrOrStderr()

	layers := make([]map[string]any, 0, len(flags.options))
	for _, path := range flags.options {
		options, err := optionsfile.Load(path)
		if err != nil {
			return err
		}
		if unknown := buttonstate.UnknownOptionPaths(options); len(unknown) > 0 {
			if flags.strict {
				return fmt.Errorf("render: %s: unknown options %s", path, strings.Join(unknown, ", "))
			}
			fmt.Fprintf(stderr, "warning: %s: ignoring unknown options %s\n", path, strings.Join(unknown, ", "))
		}
		layers = append(layers, options)
	}

	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("render: open %q: %w", input, err)
	}
	doc, err := htmlhost.Parse(file)
	file.Close()
	if err != nil {
		return err
	}

	btn := buttonstate.NewWithOptions(doc, buttonstate.Query(flags.selector), layers,
		buttonstate.WithRenderLogger(newRenderLogger(stderr, flags.verbose)),
	)
	if len(btn.Dom()) == 0 {
		fmt.Fprintf(stderr, "warning: selector %q matched no elements\n", flags.selector)
	}

	applied := false
	if cmd.Flags().Changed("loading") {
		btn.Loading(flags.loading)
		applied = true
	}
	if cmd.Flags().Changed("disabled") {
		btn.Disabled(flags.disabled)
		applied = true
	}
	if cmd.Flags().Changed("hide") {
		btn.Hide(flags.hide)
		applied = true
	}
	if !applied {
		btn.Refresh()
	}

	return writeDocument(cmd.OutOrStdout(), flags.out, doc)
}

func writeDocument(stdout io.Writer, path string, doc *htmlhost.Document) error {
	if path == "" {
		if _, err := doc.WriteTo(stdout); err != nil {
			return fmt.Errorf("render: write output: %w", err)
		}
		return nil
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %q: %w", path, err)
	}
	if _, err := doc.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("render: write %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("render: close %q: %w", path, err)
	}
	return nil
}

// newRenderLogger prints recovered render errors, and every pass when
// verbose is set.
func newRenderLogger(w io.Writer, verbose bool) buttonstate.RenderLogger {
	return buttonstate.RenderLoggerFunc(func(event buttonstate.RenderEvent) {
		if verbose {
			fmt.Fprintf(w, "render button=%s rendered=%d skipped=%d dirty=%t loading=%t disabled=%t display=%t took=%s\n",
				event.ButtonID, event.Rendered, event.Skipped, event.Dirty,
				event.State.Loading, event.State.Disabled, event.State.Display, event.Duration)
		}
		for _, err := range event.Errors {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	})
}
