// Package commands implements the CLI commands for revwatch.
package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/revwatch/internal/app"
	"go.trai.ch/revwatch/internal/build"
)

const (
	envConfig      = "REVWATCH_CONFIG"
	envMetricsAddr = "REVWATCH_METRICS_ADDR"
)

// CLI represents the command line interface for revwatch.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "revwatch",
		Short: "Watch a working copy and build, package and announce every new revision",
		Long: "revwatch polls a Subversion or Git working copy. When new revisions arrive it runs\n" +
			"Unreal BuildCookRun, zips the packaged build and plays audible cues.\n" +
			"Commit messages may carry keywords that switch to a development build or skip the build.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			jsonLogs, _ := cmd.Flags().GetBool("json")
			c.app.UseJSONLogs(jsonLogs)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
			watchConfig, _ := cmd.Flags().GetBool("watch-config")
			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath:  configPath,
				MetricsAddr: metricsAddr,
				WatchConfig: watchConfig,
			})
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", os.Getenv(envConfig),
		"Path to the configuration file (default revwatch.yaml)")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.Flags().String("metrics-addr", os.Getenv(envMetricsAddr),
		"Serve Prometheus metrics on this address, e.g. :9090")
	rootCmd.Flags().BoolP("watch-config", "w", false, "Re-read the configuration as soon as the file changes")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
