package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"intake/internal/infrastructure/config"
	"intake/internal/infrastructure/database"
	"intake/internal/infrastructure/migration"
	"intake/internal/shared/logger"
)

var (
	configPath string
	name       string
	dir        string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect database migrations using the configured strategy.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new goose migration",
		Long:  `Create a sequentially numbered SQL migration for the configured database driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Target directory (default: the embedded scripts directory for the driver)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

type env struct {
	cfg      *config.Config
	db       *gorm.DB
	log      logger.Interface
	strategy migration.Strategy
}

func initEnv(openDB bool) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	strategy, err := migration.NewStrategy(&cfg.Database, log)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, log: log, strategy: strategy}
	if openDB {
		db, err := database.Open(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		e.db = db
	}
	return e, nil
}

func (e *env) close() {
	if err := database.Close(e.db); err != nil {
		e.log.Warnw("failed to close database", "error", err)
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	return migration.Run(e.db, e.strategy, e.log)
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	e.log.Infow("rolling back migrations", "strategy", e.strategy.Name(), "steps", steps)

	switch s := e.strategy.(type) {
	case *migration.GooseStrategy:
		return s.Down(e.db, steps)
	case *migration.GolangMigrateStrategy:
		return s.Down(steps)
	default:
		return fmt.Errorf("strategy %s does not support rollback", e.strategy.Name())
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	switch s := e.strategy.(type) {
	case *migration.GooseStrategy:
		version, err := s.Version(e.db)
		if err != nil {
			return err
		}
		e.log.Infow("current migration version", "strategy", s.Name(), "version", version)
		return s.Status(e.db)
	case *migration.GolangMigrateStrategy:
		version, dirty, err := s.Version()
		if err != nil {
			return err
		}
		e.log.Infow("current migration version", "strategy", s.Name(), "version", version, "dirty", dirty)
		return nil
	default:
		e.log.Infow("strategy keeps no version history", "strategy", e.strategy.Name())
		return nil
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	e, err := initEnv(false)
	if err != nil {
		return err
	}

	s, ok := e.strategy.(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("create is only supported by the goose strategy, configured: %s", e.strategy.Name())
	}

	target := dir
	if target == "" {
		target = filepath.Join("internal", "infrastructure", "migration", filepath.FromSlash(s.Dir()))
	}

	return s.Create(target, name)
}
