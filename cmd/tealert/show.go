package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tealert/internal/config"
	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	"github.com/alexisbeaulieu97/tealert/internal/tui"
	tealerterrors "github.com/alexisbeaulieu97/tealert/pkg/errors"
)

type showOptions struct {
	path string
	fade time.Duration
}

// showResult is printed as YAML once the dialog has gone.
type showResult struct {
	File        string        `yaml:"file"`
	DismissedBy string        `yaml:"dismissed_by"`
	Button      *buttonResult `yaml:"button,omitempty"`
	Inputs      []inputResult `yaml:"inputs,omitempty"`
}

type buttonResult struct {
	Label string `yaml:"label"`
	Style string `yaml:"style"`
	Tag   int    `yaml:"tag,omitempty"`
}

type inputResult struct {
	Tag   int    `yaml:"tag"`
	Value string `yaml:"value"`
}

const (
	dismissedByButton      = "button"
	dismissedByBackground  = "background"
	dismissedByInterrupted = "interrupted"
)

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := showOptions{}

	cmd := &cobra.Command{
		Use:   "show <definition-file>",
		Short: "Show the dialog described by a YAML definition",
		Long: `Show presents an alert or action sheet read from a YAML definition and
prints what the user chose once it has been dismissed: the button tapped
and the text of every input field, keyed by tag.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.path = args[0]

			app, err := newAppContext(cmd, root, "command.show")
			if err != nil {
				return err
			}
			defer app.Close()

			app.Logger.Info(app.Context, "showing dialog", "definition", opts.path)
			err = runShow(app, cmd, opts)
			if err != nil {
				app.Logger.Error(app.Context, "show command failed", "definition", opts.path, "error", err)
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&opts.fade, "fade", tui.DefaultFadeDuration, "Length of the appear and removal transitions")

	return cmd
}

func runShow(app *AppContext, cmd *cobra.Command, opts showOptions) error {
	path, err := validateDefinitionPath(opts.path)
	if err != nil {
		return err
	}
	def, err := config.ParseFile(path)
	if err != nil {
		return err
	}

	var tapped *dialog.ButtonSpec
	c, err := config.Build(def,
		config.WithLogger(app.Logger),
		config.WithPublisher(app.Publisher),
		config.WithContext(app.Context),
		config.WithButtonHandler(func(spec dialog.ButtonSpec) {
			tapped = &spec
		}),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	hostOpts := hostOptions(app, out, renderBackdrop(app.Theme, "tealert", filepath.Base(path)))
	hostOpts = append(hostOpts, tui.WithFadeDuration(opts.fade))
	m := tui.NewModel(hostOpts...)
	c.Present(m.Stage())

	if _, err := programRunner(app.Context, m, cmd.InOrStdin(), out); err != nil {
		return tealerterrors.NewRuntimeError("show", err)
	}

	return writeShowResult(out, path, c, tapped)
}

func writeShowResult(w io.Writer, path string, c *dialog.Controller, tapped *dialog.ButtonSpec) error {
	result := showResult{File: path, DismissedBy: dismissedByInterrupted}
	switch {
	case tapped != nil:
		result.DismissedBy = dismissedByButton
		result.Button = &buttonResult{Label: tapped.Label, Style: tapped.Style.String(), Tag: tapped.Tag}
	case c.State() == dialog.StateDismissed:
		result.DismissedBy = dismissedByBackground
	}
	for _, f := range c.InputFields() {
		result.Inputs = append(result.Inputs, inputResult{Tag: f.Tag, Value: f.Value()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return enc.Close()
}

