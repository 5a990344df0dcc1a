package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"humansize/internal/cli"
	"humansize/internal/model"
	"humansize/internal/size"
)

// assembleOptions resolves the conversion options for a command. The
// persistent flags are bound to viper, so precedence is flag > env > config
// file > default.
func assembleOptions(cmd *cobra.Command) (model.Options, error) {
	decimals := viper.GetInt("decimals")
	if cmd.Flags().Changed("decimals") {
		decimals, _ = cmd.Flags().GetInt("decimals")
	}
	if decimals < 0 {
		return model.Options{}, fmt.Errorf("invalid --decimals: %d (must be >= 0)", decimals)
	}

	standardName := viper.GetString("standard")
	if cmd.Flags().Changed("standard") {
		standardName, _ = cmd.Flags().GetString("standard")
	}
	standard, err := size.ParseStandard(standardName)
	if err != nil {
		return model.Options{}, err
	}

	localeName := viper.GetString("locale")
	if cmd.Flags().Changed("locale") {
		localeName, _ = cmd.Flags().GetString("locale")
	}
	locale, err := size.ParseLocale(localeName)
	if err != nil {
		return model.Options{}, err
	}

	opts := model.Options{
		Decimals: decimals,
		Standard: standard,
		Locale:   locale,
	}

	tableSpec := viper.GetString("table")
	if cmd.Flags().Changed("table") {
		tableSpec, _ = cmd.Flags().GetString("table")
	}
	if tableSpec != "" {
		table, err := cli.ParseTableSpec(tableSpec)
		if err != nil {
			return model.Options{}, err
		}
		opts.Table = table
		opts.HasTable = true
	}

	return opts, nil
}
