package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvqn/ucrm-plugin-xero/core/loader"
	"github.com/mvqn/ucrm-plugin-xero/core/logger"
	"github.com/mvqn/ucrm-plugin-xero/core/middleware/auth"
	"github.com/mvqn/ucrm-plugin-xero/core/middleware/rayid"
	"github.com/mvqn/ucrm-plugin-xero/feature/clients"
	"github.com/mvqn/ucrm-plugin-xero/feature/integrity"
	"github.com/mvqn/ucrm-plugin-xero/feature/invoices"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/mvqn/ucrm-plugin-xero/docs/swagger"
)

// @title UCRM Xero Correlation API
// @version 1.0
// @description API exposing UCRM to Xero correlation maps, pending records, run history and integrity checks.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the correlation API server",
	Long:  `Starts the HTTP server exposing the persisted correlation maps, pending records and run history.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Configuration, logger, storage and run history
		a, err := newApp(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer a.close()
		logg := a.logger
		zap.ReplaceGlobals(logg)

		// 2. Services
		clientService, err := a.clientsService(true)
		if err != nil {
			logg.Fatal("Failed to create clients service", zap.Error(err))
		}
		invoiceService, err := a.invoicesService(true)
		if err != nil {
			logg.Fatal("Failed to create invoices service", zap.Error(err))
		}
		targets, err := a.mapTargets()
		if err != nil {
			logg.Fatal("Failed to open correlation maps", zap.Error(err))
		}
		integrityService := integrity.NewService(targets, a.client, a.cfg.Storage.Bucket, a.recorder, logg)

		// 3. Fiber app and feature loader
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(clients.NewFeature(clientService))
		mgr.Register(invoices.NewFeature(invoiceService))
		mgr.Register(integrity.NewFeature(integrityService))

		// 4. Middleware: RayID first so every line below can carry it
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

		// Swagger documentation stays public
		mountDocs(app)

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		// 5. Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Serve
		go func() {
			logg.Info("Starting server", zap.String("address", a.cfg.Server.Address()))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		shutdown := app.Shutdown
		if secs := a.cfg.Server.ShutdownTimeoutSeconds; secs > 0 {
			shutdown = func() error { return app.ShutdownWithTimeout(time.Duration(secs) * time.Second) }
		}
		if err := shutdown(); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
	},
}

// mountDocs serves the generated API documentation under /swagger.
func mountDocs(app fiber.Router) {
	app.Get("/swagger/*", swagger.HandlerDefault)
}

func init() {
	RootCmd.AddCommand(startCmd)
}
