package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"asset-registry/core/asset"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scanJSON bool
	scanType string
)

// scanCmd synchronizes the project and prints the sorted view.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Synchronize the project folder and print the asset tree",
	Long: `Scans the configured project folder, reconciles the registry, persists it
and prints every asset ordered by type, then filename.

Examples:
  # Scan the configured project
  scan

  # Scan another folder and print textures as JSON
  scan --root ./game --type texture --json`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the registry as JSON")
	scanCmd.Flags().StringVar(&scanType, "type", "", "Only print assets of this type")
	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	startTime := time.Now()

	var filter *asset.Type
	if scanType != "" {
		typ, err := asset.ParseType(scanType)
		if err != nil {
			return err
		}
		filter = &typ
	}

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	var selected []asset.Metadata
	depth := make(map[string]int)
	for _, e := range s.manager.Sorted() {
		md := e.Asset.Metadata
		if filter != nil && md.Type != *filter {
			continue
		}
		selected = append(selected, md)
		depth[md.Path] = strings.Count(strings.TrimPrefix(md.Path, s.manager.ProjectFolder()), "/")
	}

	if scanJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(selected)
	}

	stats := s.manager.Stats()
	fmt.Println("\n=== Asset Registry ===")
	for _, md := range selected {
		fmt.Printf("%-9s %s %s%s\n", md.Type, md.ID, strings.Repeat("  ", depth[md.Path]), asset.Filename(md.Path))
	}
	fmt.Printf("\nAssets: %d\n", stats.Assets)
	fmt.Printf("Registered: %d\n", stats.Registered)
	fmt.Printf("Type Mismatches: %d\n", stats.Mismatches)
	fmt.Printf("Walk Failures: %d\n", stats.WalkFailures)
	fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

	s.logger.Info("Scan completed",
		zap.String("project", s.manager.ProjectFolder()),
		zap.Int("assets", stats.Assets),
		zap.Int64("walk_failures", stats.WalkFailures),
		zap.Duration("execution_time", time.Since(startTime)),
	)
	return nil
}
