package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"humansize/internal/config"
)

const (
	ExitOK           = 0
	ExitCLIError     = 1
	ExitConvertError = 2
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "humansize",
		Short:         "Convert byte counts to human-readable sizes and back",
		Long:          "Humansize converts raw byte counts into human-readable size strings (\"1.50 KiB\", \"2,50 MB\") and parses such strings back into byte counts, over IEC (1024-based), SI (1000-based), or custom unit tables, with locale-aware number formatting.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation on a terminal opens the interactive converter.
			if isTerminal() {
				return runTUI(cmd)
			}
			return cmd.Help()
		},
	}

	// Persistent flags available to all subcommands
	bindConversionFlags(root.PersistentFlags())

	// Subcommands
	root.AddCommand(newFormatCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newUnitsCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindConversionFlags(fs *pflag.FlagSet) {
	fs.IntP("decimals", "d", 2, "Fractional digits in formatted output")
	fs.StringP("standard", "s", "iec", "Unit standard: iec (1024-based) or si (1000-based)")
	fs.StringP("locale", "l", "invariant", "Number locale: invariant, en, de, fr")
	fs.String("table", "", "Custom unit table as SYMBOL=FACTOR pairs, e.g. \"X=1,KX=1000,MX=1e6\" (overrides --standard)")
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	// Config and env are optional; flags alone must keep working.
	_ = config.Init(root)
	return root.ExecuteContext(ctx)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
