package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake/internal/shared/config"
)

func TestOpen_SQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "intakes.db")

	db, err := Open(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	_, err = os.Stat(filepath.Dir(path))
	require.NoError(t, err)

	var mode string
	require.NoError(t, db.Raw("PRAGMA journal_mode").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)

	assert.NoError(t, Ping(context.Background(), db))
}

func TestOpen_Memory(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, db.Exec("CREATE TABLE t (id INTEGER)").Error)
	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM t").Scan(&count).Error)
	assert.Zero(t, count)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
