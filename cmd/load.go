package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"asset-registry/core/identity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadCmd loads one asset and prints its payload.
var loadCmd = &cobra.Command{
	Use:   "load <path|id>",
	Short: "Load an asset and print its payload summary",
	Long: `Scans the project, then dispatches the loader registered for the asset's type.
The asset is addressed by its registry path or its ID.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := identity.Parse(args[0])
		if err != nil {
			md, ok := s.manager.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no asset registered at %s", args[0])
			}
			id = md.ID
		}

		before, live := len(s.manager.Registry()), s.manager.Len()
		if _, err := s.manager.Load(ctx, id); err != nil {
			return fmt.Errorf("failed to load %s: %w", args[0], err)
		}
		// Loaders may register or drop embedded assets.
		if len(s.manager.Registry()) != before || s.manager.Len() != live {
			s.manager.Reconcile()
			s.save(ctx)
		}

		a, _ := s.manager.Get(id)
		s.logger.Info("Asset loaded",
			zap.String("path", a.Metadata.Path),
			zap.Stringer("type", a.Metadata.Type),
			zap.Stringer("id", a.Metadata.ID),
		)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"id":   a.Metadata.ID,
			"path": a.Metadata.Path,
			"type": a.Metadata.Type,
			"data": a.Data,
		})
	},
}

func init() {
	RootCmd.AddCommand(loadCmd)
}
