package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "parse <size>...",
		Short:         "Parse human-readable sizes back into byte counts",
		Example:       "  humansize parse \"1.50 KiB\"\n  humansize parse -s si \"1KB\"\n  humansize parse -s si -l de \"1,50 KB\"",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := assembleOptions(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}

			conv := opts.Converter()
			for _, arg := range args {
				n, err := conv.Parse(arg)
				if err != nil {
					return &ExitError{Code: ExitConvertError, Err: fmt.Errorf("cannot parse %q: %w", arg, err)}
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
