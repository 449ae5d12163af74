// Package migration applies the intake schema with one of three strategies:
// versioned goose scripts (default), golang-migrate scripts for MySQL, or
// gorm AutoMigrate from the persistence models.
package migration

import (
	"embed"
	"fmt"

	"gorm.io/gorm"

	"intake/internal/infrastructure/persistence/models"
	"intake/internal/shared/config"
	"intake/internal/shared/logger"
)

//go:embed scripts
var scriptsFS embed.FS

// Strategy brings a database schema up to date.
type Strategy interface {
	Migrate(db *gorm.DB) error
	Name() string
}

// NewStrategy picks the strategy configured for the database.
func NewStrategy(cfg *config.DatabaseConfig, log logger.Interface) (Strategy, error) {
	switch cfg.MigrationStrategy {
	case config.MigrationGoose, "":
		strategy, err := NewGooseStrategy(cfg.Driver, log)
		if err != nil {
			return nil, err
		}
		return strategy, nil
	case config.MigrationGolangMigrate:
		if cfg.Driver != config.DriverMySQL {
			return nil, fmt.Errorf("golang-migrate strategy requires mysql, got %s", cfg.Driver)
		}
		return NewGolangMigrateStrategy(cfg.GetMigrateURL(), log), nil
	case config.MigrationAuto:
		return NewAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", cfg.MigrationStrategy)
	}
}

// Run applies strategy to db and logs the outcome.
func Run(db *gorm.DB, strategy Strategy, log logger.Interface) error {
	log.Infow("starting database migration", "strategy", strategy.Name())

	if err := strategy.Migrate(db); err != nil {
		log.Errorw("migration failed", "strategy", strategy.Name(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", strategy.Name(), err)
	}

	log.Infow("database migration completed", "strategy", strategy.Name())
	return nil
}

// Models lists the persistence models managed by AutoMigrate.
func Models() []any {
	return []any{
		&models.IntakeModel{},
	}
}

type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.auto")}
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	list := Models()
	s.logger.Infow("running gorm automigrate", "models_count", len(list))

	if err := db.AutoMigrate(list...); err != nil {
		return fmt.Errorf("failed to automigrate: %w", err)
	}
	return nil
}

func (s *AutoMigrateStrategy) Name() string {
	return config.MigrationAuto
}
