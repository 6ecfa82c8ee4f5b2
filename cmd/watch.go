package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"asset-registry/core/manager"
	"asset-registry/core/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd keeps the registry of a local project in sync with the disk.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow file changes of a local project",
	Long: `Scans the project, then re-imports changed files and re-synchronizes
changed directories until interrupted. Every applied batch is reconciled and persisted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		if s.cfg.Project.Source != manager.SourceLocal {
			return fmt.Errorf("watch requires a local project, got source %q", s.cfg.Project.Source)
		}

		w, err := watch.New(s.manager, s.cfg.Watch)
		if err != nil {
			return err
		}
		defer w.Close()

		w.OnApply = func(ctx context.Context, changes []watch.Change) {
			s.save(ctx)
		}

		s.logger.Info("Watching project",
			zap.String("project", s.manager.ProjectFolder()),
			zap.Int("directories", w.Watched()),
		)
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		s.logger.Info("Watcher stopped")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
