package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "intake/internal/shared/config"
)

// EnvPrefix namespaces environment overrides, e.g. INTAKE_SERVER_PORT.
const EnvPrefix = "INTAKE"

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server" yaml:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth" yaml:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis" yaml:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit" yaml:"ratelimit"`
}

// Load reads config.yaml from path, or from ./configs and ../configs when
// path is empty, then applies INTAKE_* environment overrides. A missing
// config file is not an error. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.Auth.AdminPassword == "" {
		return errors.New("auth.admin_password is required (set INTAKE_AUTH_ADMIN_PASSWORD)")
	}
	if c.Auth.AdminUsername == "" {
		return errors.New("auth.admin_username must not be empty")
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server.mode %q", c.Server.Mode)
	}

	switch c.Database.Driver {
	case sharedConfig.DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("database.path is required for sqlite")
		}
	case sharedConfig.DriverMySQL, sharedConfig.DriverPostgres:
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}

	switch c.Database.MigrationStrategy {
	case sharedConfig.MigrationGoose, sharedConfig.MigrationAuto:
	case sharedConfig.MigrationGolangMigrate:
		if c.Database.Driver != sharedConfig.DriverMySQL {
			return fmt.Errorf("migration strategy %q requires the mysql driver", c.Database.MigrationStrategy)
		}
	default:
		return fmt.Errorf("unknown database.migration_strategy %q", c.Database.MigrationStrategy)
	}

	if c.RateLimit.RequestsPerWindow < 1 || c.RateLimit.WindowSeconds < 1 {
		return errors.New("ratelimit.requests_per_window and ratelimit.window_seconds must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 15)

	v.SetDefault("database.driver", sharedConfig.DriverSQLite)
	v.SetDefault("database.path", "./data/intakes.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "intake")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.migration_strategy", sharedConfig.MigrationGoose)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.admin_username", "admin")
	v.SetDefault("auth.admin_password", "")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ratelimit.requests_per_window", 20)
	v.SetDefault("ratelimit.window_seconds", 60)
}
