package cmd

import (
	"github.com/spf13/cobra"

	"humansize/internal/ui"
)

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tui",
		Short:         "Interactive size converter",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Force TUI; if stdout is not a terminal, ui.Run will error
			// appropriately.
			return runTUI(cmd)
		},
	}
}

func runTUI(cmd *cobra.Command) error {
	opts, err := assembleOptions(cmd)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	if err := ui.Run(cmd.Context(), opts); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	return nil
}
