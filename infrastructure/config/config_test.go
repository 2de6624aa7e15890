package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if cfg.Database.Driver != DriverMySQL {
		t.Errorf("Driver = %v, want mysql", cfg.Database.Driver)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Host = %v, want localhost", cfg.Database.Host)
	}
	if cfg.Database.Database != "JupiterDB" {
		t.Errorf("Database = %v, want JupiterDB", cfg.Database.Database)
	}
	if cfg.Database.Table != "Photos" {
		t.Errorf("Table = %v, want Photos", cfg.Database.Table)
	}
	if cfg.Database.Password != "" {
		t.Error("Default password must be empty")
	}
	if cfg.Window.Width != 1200 || cfg.Window.Height != 700 {
		t.Errorf("Window = %vx%v, want 1200x700", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Viewer.Width != 600 || cfg.Viewer.Height != 400 {
		t.Errorf("Viewer = %vx%v, want 600x400", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoad_NoUserFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(&LoadOptions{LookupEnv: envMap(nil)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Database != "JupiterDB" {
		t.Errorf("Database = %v, want JupiterDB", cfg.Database.Database)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeFile(t, `
database:
  driver: postgres
  host: db.internal
  user: viewer
  database: photos
`)

	cfg, err := Load(&LoadOptions{Path: path, LookupEnv: envMap(nil)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Driver = %v, want postgres", cfg.Database.Driver)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Host = %v, want db.internal", cfg.Database.Host)
	}
	// Unset fields keep defaults
	if cfg.Database.Table != "Photos" {
		t.Errorf("Table = %v, want Photos", cfg.Database.Table)
	}
	if cfg.Database.EffectivePort() != 5432 {
		t.Errorf("EffectivePort() = %d, want 5432", cfg.Database.EffectivePort())
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(&LoadOptions{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeFile(t, "database:\n  hostname: x\n")

	if _, err := Load(&LoadOptions{Path: path}); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "")

	cfg, err := Load(&LoadOptions{Path: path, LookupEnv: envMap(nil)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Driver != DriverMySQL {
		t.Errorf("Driver = %v, want mysql", cfg.Database.Driver)
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "database:\n  host: from-file\n  user: file-user\n")

	cfg, err := Load(&LoadOptions{
		Path: path,
		LookupEnv: envMap(map[string]string{
			EnvDBHost:     "from-env",
			EnvDBPassword: "secret",
			EnvDBPort:     "3307",
			EnvLogLevel:   "debug",
		}),
		Overrides: &Config{Database: DatabaseConfig{Host: "from-flag"}},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Host != "from-flag" {
		t.Errorf("Host = %v, want from-flag", cfg.Database.Host)
	}
	if cfg.Database.User != "file-user" {
		t.Errorf("User = %v, want file-user", cfg.Database.User)
	}
	if cfg.Database.Password != "secret" {
		t.Errorf("Password = %v, want secret", cfg.Database.Password)
	}
	if cfg.Database.Port != 3307 {
		t.Errorf("Port = %d, want 3307", cfg.Database.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", cfg.Logging.Level)
	}
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Load(&LoadOptions{LookupEnv: envMap(map[string]string{EnvDBPort: "abc"})})
	if err == nil || !strings.Contains(err.Error(), EnvDBPort) {
		t.Errorf("error = %v, want mention of %s", err, EnvDBPort)
	}
}

func TestDatabaseConfig_Validate(t *testing.T) {
	valid := func() DatabaseConfig {
		return DatabaseConfig{
			Driver:   DriverMySQL,
			Host:     "localhost",
			User:     "root",
			Database: "JupiterDB",
			Table:    "Photos",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *DatabaseConfig)
		wantErr bool
	}{
		{"valid", func(c *DatabaseConfig) {}, false},
		{"unknown driver", func(c *DatabaseConfig) { c.Driver = "oracle" }, true},
		{"missing host", func(c *DatabaseConfig) { c.Host = "" }, true},
		{"sqlite without host", func(c *DatabaseConfig) { c.Driver = DriverSQLite; c.Host = "" }, false},
		{"missing database", func(c *DatabaseConfig) { c.Database = "" }, true},
		{"table injection", func(c *DatabaseConfig) { c.Table = "Photos; DROP TABLE Photos" }, true},
		{"table empty", func(c *DatabaseConfig) { c.Table = "" }, true},
		{"table underscore", func(c *DatabaseConfig) { c.Table = "photo_files_2" }, false},
		{"bad port", func(c *DatabaseConfig) { c.Port = 70000 }, true},
		{"bad timeout", func(c *DatabaseConfig) { c.ConnectTimeout = "soon" }, true},
		{"negative timeout", func(c *DatabaseConfig) { c.ConnectTimeout = "-1s" }, true},
		{"good timeout", func(c *DatabaseConfig) { c.ConnectTimeout = "3s" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDatabaseConfig_Addr(t *testing.T) {
	tests := []struct {
		cfg      DatabaseConfig
		expected string
	}{
		{DatabaseConfig{Driver: DriverMySQL, Host: "localhost"}, "localhost:3306"},
		{DatabaseConfig{Driver: DriverPostgres, Host: "db"}, "db:5432"},
		{DatabaseConfig{Driver: DriverMongoDB, Host: "db", Port: 27018}, "db:27018"},
		{DatabaseConfig{Driver: DriverMySQL, Host: "::1"}, "[::1]:3306"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.cfg.Addr(); got != tt.expected {
				t.Errorf("Addr() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDatabaseConfig_Redacted(t *testing.T) {
	c := DatabaseConfig{User: "root", Password: "hunter2"}

	r := c.Redacted()
	if r.Password == "hunter2" {
		t.Error("Redacted() leaked the password")
	}
	if c.Password != "hunter2" {
		t.Error("Redacted() modified the original")
	}
}

func TestConfig_Validate_Sizes(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	cfg.Viewer.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero viewer width")
	}
}
