package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tealert/internal/config"
	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	tealerterrors "github.com/alexisbeaulieu97/tealert/pkg/errors"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <definition-file>...",
		Short: "Check dialog definitions without showing them",
		Long: `Validate parses every definition, checks it against the dialog rules and
tries to load its image. A missing image is reported as a warning since
show leaves it out rather than failing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, "command.validate")
			if err != nil {
				return err
			}
			defer app.Close()

			return runValidate(app, cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	return cmd
}

func runValidate(app *AppContext, out, errOut io.Writer, paths []string) error {
	invalid := 0
	for _, path := range paths {
		def, err := parseDefinition(path)
		if err != nil {
			invalid++
			app.Logger.Warn(app.Context, "definition rejected", "definition", path, "error", err)
			fmt.Fprintf(errOut, "%s: %v\n", path, err)
			continue
		}

		if def.Image != "" {
			if _, err := config.LoadImage(def); err != nil {
				fmt.Fprintf(errOut, "%s: warning: %v\n", path, err)
				var imageErr *tealerterrors.ImageError
				if errors.As(err, &imageErr) && imageErr.Missing() {
					fmt.Fprintf(errOut, "%s: warning: show will leave the image out\n", path)
				}
			}
		}
		fmt.Fprintf(out, "%s: valid (%s)\n", path, summarize(def))
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d definitions are invalid", invalid, len(paths))
	}
	return nil
}

func parseDefinition(path string) (*config.Definition, error) {
	abs, err := validateDefinitionPath(path)
	if err != nil {
		return nil, err
	}
	return config.ParseFile(abs)
}

func summarize(def *config.Definition) string {
	style, _ := dialog.ParseStyle(def.Style)
	summary := fmt.Sprintf("%s, %s", style, plural(len(def.Buttons), "button"))
	if len(def.Inputs) > 0 {
		summary += ", " + plural(len(def.Inputs), "input")
	}
	return summary
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
