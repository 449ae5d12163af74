package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	MigrationGoose         = "goose"
	MigrationGolangMigrate = "golang-migrate"
	MigrationAuto          = "auto"
)

type ServerConfig struct {
	Host                string   `mapstructure:"host" yaml:"host"`
	Port                int      `mapstructure:"port" yaml:"port"`
	Mode                string   `mapstructure:"mode" yaml:"mode"`
	AllowedOrigins      []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	ReadTimeoutSeconds  int      `mapstructure:"read_timeout_seconds" yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `mapstructure:"write_timeout_seconds" yaml:"write_timeout_seconds"`
}

func (s *ServerConfig) GetAddr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func (s *ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

func (s *ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	Driver            string `mapstructure:"driver" yaml:"driver"`
	Path              string `mapstructure:"path" yaml:"path"`
	Host              string `mapstructure:"host" yaml:"host"`
	Port              int    `mapstructure:"port" yaml:"port"`
	Username          string `mapstructure:"username" yaml:"username"`
	Password          string `mapstructure:"password" yaml:"password"`
	Database          string `mapstructure:"database" yaml:"database"`
	MaxIdleConns      int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns      int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
	MigrationStrategy string `mapstructure:"migration_strategy" yaml:"migration_strategy"`
}

// GetDSN returns the gorm data source for the configured driver.
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database)
	default:
		return d.Path
	}
}

// GetMigrateURL returns the golang-migrate database URL. Only MySQL is
// supported.
func (d *DatabaseConfig) GetMigrateURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%d)/%s?multiStatements=true",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

func (d *DatabaseConfig) IsSQLite() bool {
	return d.Driver == DriverSQLite
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

type AuthConfig struct {
	AdminUsername string `mapstructure:"admin_username" yaml:"admin_username"`
	// AdminPassword is either the plain secret or a bcrypt hash of it.
	AdminPassword string `mapstructure:"admin_password" yaml:"admin_password"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

type RateLimitConfig struct {
	RequestsPerWindow int `mapstructure:"requests_per_window" yaml:"requests_per_window"`
	WindowSeconds     int `mapstructure:"window_seconds" yaml:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}
