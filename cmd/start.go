package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"asset-registry/core/loader"
	"asset-registry/core/logger"
	"asset-registry/core/middleware/auth"
	"asset-registry/core/middleware/rayid"

	"asset-registry/feature/assets"
	"asset-registry/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-registry/docs/swagger"
)

// @title Asset Registry API
// @version 1.0
// @description API for browsing, synchronizing and loading the assets of a project folder.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset registry server",
	Long:  `Scans the project, then starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()
		logg := s.logger
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(assets.NewFeature(assets.NewService(s.manager, s.saver(), logg.Named("assets"))))
		mgr.Register(integrity.NewFeature(integrity.NewService(
			s.manager, s.client, s.cfg.Storage.Bucket, s.db, s.saver(), logg.Named("integrity"),
		)))

		// RayID first so every log line of a request carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		if s.cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		app.Use(auth.New(auth.Config{ApiKey: s.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("address", s.cfg.Server.Address()))
			if err := app.Listen(s.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logg.Warn("Server shutdown failed", zap.Error(err))
		}
		s.save(ctx)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
