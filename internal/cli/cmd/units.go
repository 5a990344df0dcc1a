package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"humansize/internal/size"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "units",
		Short:         "Show the unit tables in effect",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := assembleOptions(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}

			out := cmd.OutOrStdout()
			if opts.HasTable {
				fmt.Fprintln(out, renderTable("custom", opts.Table))
				return nil
			}
			fmt.Fprintln(out, renderTable("iec", size.IEC.Table()))
			fmt.Fprintln(out, renderTable("si", size.SI.Table()))
			return nil
		},
	}
}

var (
	unitsTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	unitsSymbolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE"))
	unitsFactorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))
)

func renderTable(name string, t size.Table) string {
	var b strings.Builder
	b.WriteString(unitsTitleStyle.Render(name))
	b.WriteString("\n")
	for _, e := range t.Entries() {
		factor := strconv.FormatFloat(e.Factor, 'f', -1, 64)
		b.WriteString(fmt.Sprintf("  %s %s bytes\n",
			unitsSymbolStyle.Render(fmt.Sprintf("%-4s", e.Symbol)),
			unitsFactorStyle.Render(fmt.Sprintf("%18s", factor))))
	}
	return b.String()
}
