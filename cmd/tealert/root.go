package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	logFile    string
	appearance string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tealert",
		Short:         "tealert shows alerts and action sheets in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append JSON logs to this file")
	cmd.PersistentFlags().StringVar(&flags.appearance, "appearance", "auto", "Colour appearance: auto, light or dark")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
