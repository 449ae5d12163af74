package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"intake/internal/infrastructure/config"
	"intake/internal/infrastructure/database"
	"intake/internal/infrastructure/migration"
	httpRouter "intake/internal/interfaces/http"
	"intake/internal/shared/goroutine"
	"intake/internal/shared/logger"
	"intake/internal/shared/version"
)

const shutdownTimeout = 30 * time.Second

var (
	configPath     string
	mode           string
	skipMigrations bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the intake HTTP server. Pending migrations are applied on startup unless --skip-migrations is set.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Gin mode override (debug, release, test)")
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if mode != "" {
		cfg.Server.Mode = mode
	}

	if err := logger.Init(cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"mode", cfg.Server.Mode,
		"database_driver", cfg.Database.Driver,
		"migration_strategy", cfg.Database.MigrationStrategy,
	)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if skipMigrations {
		log.Infow("skipping migrations")
	} else {
		strategy, err := migration.NewStrategy(&cfg.Database, log)
		if err != nil {
			return err
		}
		if err := migration.Run(db, strategy, log); err != nil {
			return err
		}
	}

	container, err := httpRouter.NewContainer(cmd.Context(), cfg, db, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()
	container.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "address", srv.Addr, "version", version.Get().Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}, func(recovered any) {
		serveErr <- fmt.Errorf("server panicked: %v", recovered)
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
