package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcoot/edgeguard/internal/config"
)

var (
	v          *viper.Viper
	settings   config.Settings
	configPath string
	client     *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v = config.New()
	configPath = ""

	rootCmd := &cobra.Command{
		Use:   "edgeguard",
		Short: "Rule-based tower defence bot",
		Long: `edgeguard plays a two-player tower defence game over the engine's
line-delimited JSON protocol on stdin/stdout.

Each turn it rebuilds a fixed defensive layout and, once enough mobile
resource has accumulated, launches a single area attacker. Turn history
can be kept in memory or redis and inspected through a read-only status API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			settings = s

			client = NewClient(settings.Server)
			return nil
		},
		SilenceUsage: true,
	}

	bindGlobalFlags(rootCmd, v)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
