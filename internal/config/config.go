package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Logger   LoggerConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SQLitePath      string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables. Values from a .env
// file in the working directory are applied first when the file exists;
// variables already set in the environment take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:          driver,
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", defaultPort(driver)),
			User:            getEnv("DB_USER", defaultUser(driver)),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "openfood"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "openfood.db"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Validate validates the database configuration for its driver.
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required")
		}
	case DriverPostgres, DriverMySQL:
		if c.Host == "" {
			return fmt.Errorf("database host is required")
		}

		if c.Port < 1 || c.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Port)
		}

		if c.User == "" {
			return fmt.Errorf("database user is required")
		}

		if c.Database == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q (must be postgres, sqlite, or mysql)", c.Driver)
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the driver-specific data source name.
func (c *DatabaseConfig) ConnectionString() string {
	switch c.Driver {
	case DriverSQLite:
		return sqliteDSN(c.SQLitePath)
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		mc.DBName = c.Database
		mc.ParseTime = true
		return mc.FormatDSN()
	default:
		return fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			c.User,
			c.Password,
			c.Host,
			c.Port,
			c.Database,
		)
	}
}

// IsInMemory reports whether the configuration points at an in-memory
// SQLite database, which only exists for the lifetime of one connection.
func (c *DatabaseConfig) IsInMemory() bool {
	return c.Driver == DriverSQLite && (c.SQLitePath == ":memory:" || strings.Contains(c.SQLitePath, "mode=memory"))
}

// ConnLifetime returns MaxConnLifetime as a duration.
func (c *DatabaseConfig) ConnLifetime() time.Duration {
	return time.Duration(c.MaxConnLifetime) * time.Second
}

// sqliteDSN turns a path into a modernc DSN with foreign key enforcement,
// which SQLite leaves off by default.
func sqliteDSN(path string) string {
	const fk = "_pragma=foreign_keys(1)"

	if path == ":memory:" {
		return "file::memory:?" + fk
	}

	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + fk
	}
	return dsn + "?" + fk
}

func defaultPort(driver string) int {
	if driver == DriverMySQL {
		return 3306
	}
	return 5432
}

func defaultUser(driver string) string {
	if driver == DriverMySQL {
		return "root"
	}
	return "postgres"
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
