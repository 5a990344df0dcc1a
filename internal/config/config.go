package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"humansize/internal/dirs"
)

// Init wires Viper with config paths, env, and flag bindings.
// It is non-fatal: any errors are returned for optional handling by caller.
func Init(root *cobra.Command) error {
	// Setup config search path
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		_ = dirs.Ensure(cfgDir)
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: HUMANSIZE_*
	viper.SetEnvPrefix("HUMANSIZE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind root persistent flags to Viper keys
	_ = viper.BindPFlag("decimals", root.PersistentFlags().Lookup("decimals"))
	_ = viper.BindPFlag("standard", root.PersistentFlags().Lookup("standard"))
	_ = viper.BindPFlag("locale", root.PersistentFlags().Lookup("locale"))
	_ = viper.BindPFlag("table", root.PersistentFlags().Lookup("table"))

	// Read config file if present (ignore not found)
	_ = viper.ReadInConfig()

	return nil
}
