package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongoDB  = "mongodb"
)

// Environment variable names.
const (
	EnvDBDriver   = "PHOTOVIEW_DB_DRIVER"
	EnvDBHost     = "PHOTOVIEW_DB_HOST"
	EnvDBPort     = "PHOTOVIEW_DB_PORT"
	EnvDBUser     = "PHOTOVIEW_DB_USER"
	EnvDBPassword = "PHOTOVIEW_DB_PASSWORD"
	EnvDBName     = "PHOTOVIEW_DB_NAME"
	EnvDBTable    = "PHOTOVIEW_DB_TABLE"
	EnvLogLevel   = "PHOTOVIEW_LOG_LEVEL"
)

// DatabaseConfig contains the photo database connection parameters.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	// Database is the schema name, or the file path for sqlite.
	Database string `yaml:"database"`
	// Table is the photo table, or the collection for mongodb.
	Table          string `yaml:"table"`
	ConnectTimeout string `yaml:"connect_timeout"`
}

// DefaultPort returns the conventional port for a driver, or 0 if the
// driver does not use the network.
func DefaultPort(driver string) int {
	switch driver {
	case DriverMySQL:
		return 3306
	case DriverPostgres:
		return 5432
	case DriverMongoDB:
		return 27017
	default:
		return 0
	}
}

// EffectivePort returns Port, or the driver's default port when unset.
func (c *DatabaseConfig) EffectivePort() int {
	if c.Port != 0 {
		return c.Port
	}
	return DefaultPort(c.Driver)
}

// Addr returns host:port.
func (c *DatabaseConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.EffectivePort()))
}

// ConnectTimeoutDuration parses and returns the connect timeout.
// Returns 0 (no timeout) when unset or invalid.
func (c *DatabaseConfig) ConnectTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnectTimeout)
	return d
}

// Merge applies values from overlay that differ from zero values.
func (c *DatabaseConfig) Merge(overlay *DatabaseConfig) {
	if overlay.Driver != "" {
		c.Driver = overlay.Driver
	}
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.User != "" {
		c.User = overlay.User
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.Database != "" {
		c.Database = overlay.Database
	}
	if overlay.Table != "" {
		c.Table = overlay.Table
	}
	if overlay.ConnectTimeout != "" {
		c.ConnectTimeout = overlay.ConnectTimeout
	}
}

func (c *DatabaseConfig) applyEnv(lookup func(string) (string, bool)) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set(EnvDBDriver, &c.Driver)
	set(EnvDBHost, &c.Host)
	set(EnvDBUser, &c.User)
	set(EnvDBPassword, &c.Password)
	set(EnvDBName, &c.Database)
	set(EnvDBTable, &c.Table)

	if v, ok := lookup(EnvDBPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDBPort, v, err)
		}
		c.Port = port
	}
	return nil
}

// Validate checks the database configuration.
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverMySQL, DriverPostgres, DriverMongoDB:
		if c.Host == "" {
			return fmt.Errorf("host required for %s", c.Driver)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported driver %q", c.Driver)
	}

	if c.Database == "" {
		return fmt.Errorf("database required")
	}
	if !identifierPattern.MatchString(c.Table) {
		return fmt.Errorf("invalid table name %q", c.Table)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ConnectTimeout != "" {
		d, err := time.ParseDuration(c.ConnectTimeout)
		if err != nil {
			return fmt.Errorf("invalid connect_timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("connect_timeout must not be negative")
		}
	}
	return nil
}

// Redacted returns a copy safe to log.
func (c DatabaseConfig) Redacted() DatabaseConfig {
	if c.Password != "" {
		c.Password = "******"
	}
	return c
}
