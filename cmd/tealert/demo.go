package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tealert/internal/demo"
	"github.com/alexisbeaulieu97/tealert/internal/tui"
	tealerterrors "github.com/alexisbeaulieu97/tealert/pkg/errors"
)

type demoOptions struct {
	scenario string
	list     bool
	fade     time.Duration
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse the sample alerts and action sheets",
		Long: `Demo opens a menu of sample dialogs. Picking an entry presents that
sample; the menu returns once it is dismissed. Use --scenario to show a
single sample and exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				return listScenarios(cmd.OutOrStdout())
			}

			app, err := newAppContext(cmd, root, "command.demo")
			if err != nil {
				return err
			}
			defer app.Close()

			app.Logger.Info(app.Context, "starting demo", "scenario", opts.scenario)
			err = runDemo(app, cmd, opts)
			if err != nil {
				app.Logger.Error(app.Context, "demo command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "Show only this sample")
	cmd.Flags().BoolVar(&opts.list, "list", false, "List the samples and exit")
	cmd.Flags().DurationVar(&opts.fade, "fade", tui.DefaultFadeDuration, "Length of the appear and removal transitions")

	return cmd
}

func runDemo(app *AppContext, cmd *cobra.Command, opts demoOptions) error {
	if opts.scenario != "" {
		if _, ok := demo.Lookup(opts.scenario); !ok {
			return fmt.Errorf("unknown scenario %q (see tealert demo --list)", opts.scenario)
		}
	}

	out := cmd.OutOrStdout()
	hostOpts := append(hostOptions(app, out, demoBackdrop(app)), tui.WithFadeDuration(opts.fade))
	m := tui.NewModel(hostOpts...)

	d, err := demo.New(m.Stage(),
		demo.WithLogger(app.Logger),
		demo.WithPublisher(app.Publisher),
		demo.WithContext(app.Context),
	)
	if err != nil {
		return err
	}
	defer d.Close()

	if opts.scenario != "" {
		err = d.Run(opts.scenario)
	} else {
		err = d.Start()
	}
	if err != nil {
		return err
	}

	if _, err := programRunner(app.Context, m, cmd.InOrStdin(), out); err != nil {
		return tealerterrors.NewRuntimeError("demo", err)
	}

	for _, line := range d.Transcript() {
		fmt.Fprintln(out, line)
	}
	return nil
}

func demoBackdrop(app *AppContext) string {
	lines := make([]string, 0, len(demo.Scenarios()))
	for _, s := range demo.Scenarios() {
		lines = append(lines, fmt.Sprintf("%-13s %s", s.Section, s.Title))
	}
	return renderBackdrop(app.Theme, "tealert demo", lines...)
}

func listScenarios(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSECTION\tTITLE")
	for _, s := range demo.Scenarios() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Section, s.Title)
	}
	return tw.Flush()
}
