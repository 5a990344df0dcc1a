package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "format <bytes>...",
		Short:         "Render byte counts as human-readable sizes",
		Example:       "  humansize format 1536\n  humansize format -s si -l de 1500\n  humansize format --width 12 1024 1048576",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := assembleOptions(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			width, _ := cmd.Flags().GetInt("width")
			padStr, _ := cmd.Flags().GetString("pad")
			pad := ' '
			if padStr != "" {
				pad = []rune(padStr)[0]
			}

			conv := opts.Converter()
			for _, arg := range args {
				bytes, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("invalid byte count %q: %v", arg, err)}
				}

				var out string
				if width > 0 {
					out, err = conv.FormatAligned(bytes, width, pad)
				} else {
					out, err = conv.Format(bytes)
				}
				if err != nil {
					return &ExitError{Code: ExitConvertError, Err: err}
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().Int("width", 0, "Left-pad output to at least this many characters")
	cmd.Flags().String("pad", " ", "Padding character used with --width")
	return cmd
}
