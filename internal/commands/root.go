package commands

import (
	"log/slog"

	"github.com/musheer090/kubescape-automator/internal/config"
	"github.com/musheer090/kubescape-automator/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string
	commit  string
	date    string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "kubescape-automator",
	Short: "Run kubescape framework scans and archive the reports to S3",
	Long: `kubescape-automator runs the kubescape scanner against your current
Kubernetes cluster once per security framework (NSA, MITRE), stores the
generated reports and scanner logs in a timestamped local directory, and
mirrors them to an S3 bucket.

Run the scan command with no flags in a terminal for interactive setup.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
		} else {
			cfg = loaded
		}
	},
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

// GetVersion returns the current version.
func GetVersion() string {
	return version
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(versionCmd)
}
