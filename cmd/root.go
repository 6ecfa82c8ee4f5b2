package cmd

import (
	"fmt"
	"os"

	"asset-registry/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configDir is the directory holding the .env file.
	configDir string
	// rootFlag overrides PROJECT_ROOT.
	rootFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "asset-registry",
	Short: "Asset Registry Service",
	Long: `Asset Registry gives every file of a project folder a stable identity.
It scans local folders or S3 buckets, keeps IDs across rescans and restarts,
and loads textures and models on demand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 output for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory containing the .env file")
	RootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Project folder (overrides PROJECT_ROOT)")
}
