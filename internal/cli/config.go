package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bindGlobalFlags registers the persistent flags and binds each to its
// config key, so a flag overrides env and file values when set
func bindGlobalFlags(cmd *cobra.Command, v *viper.Viper) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: ./edgeguard.yaml if present)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error (env: EDGEGUARD_LOG_LEVEL)")
	pf.String("log-format", "json", "Log format: json, text (env: EDGEGUARD_LOG_FORMAT)")
	pf.StringP("output", "o", "text", "Output format: text, json")
	pf.String("server", "http://localhost:8089", "Status API URL for history commands (env: EDGEGUARD_SERVER)")

	bindings := map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"output":     "output",
		"server":     "server",
	}
	for key, flag := range bindings {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}
}

// applyLayoutFlag lets a command-level --layout override the configured layout
func applyLayoutFlag(cmd *cobra.Command, layout string) {
	if cmd.Flags().Changed("layout") {
		settings.Strategy.Layout = layout
	}
}
