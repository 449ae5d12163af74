package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"intake/internal/shared/config"
	"intake/internal/shared/logger"
)

const golangMigrateDir = "scripts/migrate"

// GolangMigrateStrategy runs the MySQL scripts through golang-migrate on its
// own connection, so closing the migrator never touches the gorm pool.
type GolangMigrateStrategy struct {
	databaseURL string
	logger      logger.Interface
}

func NewGolangMigrateStrategy(databaseURL string, log logger.Interface) *GolangMigrateStrategy {
	return &GolangMigrateStrategy{
		databaseURL: databaseURL,
		logger:      log.With("component", "migration.golang-migrate"),
	}
}

func (s *GolangMigrateStrategy) Name() string {
	return config.MigrationGolangMigrate
}

func (s *GolangMigrateStrategy) Migrate(_ *gorm.DB) error {
	m, err := s.newMigrate()
	if err != nil {
		return err
	}
	defer s.close(m)

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", from)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("golang-migrate migration completed", "from_version", from, "to_version", to)
	return nil
}

func (s *GolangMigrateStrategy) Down(steps int) error {
	m, err := s.newMigrate()
	if err != nil {
		return err
	}
	defer s.close(m)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed", "steps", steps)
	return nil
}

func (s *GolangMigrateStrategy) Version() (uint, bool, error) {
	m, err := s.newMigrate()
	if err != nil {
		return 0, false, err
	}
	defer s.close(m)

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (s *GolangMigrateStrategy) newMigrate() (*migrate.Migrate, error) {
	src, err := iofs.New(scriptsFS, golangMigrateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration scripts: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, s.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func (s *GolangMigrateStrategy) close(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		s.logger.Warnw("failed to close migrator", "source_error", srcErr, "database_error", dbErr)
	}
}
