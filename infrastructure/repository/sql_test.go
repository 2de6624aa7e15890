package repository

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"photoview/infrastructure/config"
)

func sqliteConfig(path string) *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:         config.DriverSQLite,
		Database:       path,
		Table:          "Photos",
		ConnectTimeout: "5s",
	}
}

// seedSQLite creates a Photos table with the given statements applied.
func seedSQLite(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photos.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	create := `CREATE TABLE Photos (
		id INTEGER PRIMARY KEY,
		original_path TEXT,
		compressed_path TEXT,
		original_size INTEGER,
		compressed_size INTEGER
	)`
	for _, stmt := range append([]string{create}, stmts...) {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Exec(%q): %v", stmt, err)
		}
	}
	return path
}

func TestSQLPhotoRepository_FindAll(t *testing.T) {
	path := seedSQLite(t,
		`INSERT INTO Photos VALUES (1, '/img/a.jpg', '/img/a_c.jpg', 2048, 512)`,
		`INSERT INTO Photos VALUES (2, '/img/b.jpg', '/img/b_c.jpg', 4096, 1024)`,
	)

	repo, err := NewSQLPhotoRepository(sqliteConfig(path), nil)
	if err != nil {
		t.Fatalf("NewSQLPhotoRepository() error = %v", err)
	}

	photos, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("len(photos) = %d, want 2", len(photos))
	}

	p := photos[0]
	if p.ID != 1 || p.OriginalPath != "/img/a.jpg" || p.CompressedPath != "/img/a_c.jpg" ||
		p.OriginalSize != 2048 || p.CompressedSize != 512 {
		t.Errorf("photos[0] = %+v", p)
	}
	if photos[1].ID != 2 {
		t.Errorf("photos[1].ID = %d, want 2", photos[1].ID)
	}
}

func TestSQLPhotoRepository_FindAll_Empty(t *testing.T) {
	repo, err := NewSQLPhotoRepository(sqliteConfig(seedSQLite(t)), nil)
	if err != nil {
		t.Fatalf("NewSQLPhotoRepository() error = %v", err)
	}

	photos, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("len(photos) = %d, want 0", len(photos))
	}
}

func TestSQLPhotoRepository_FindAll_Nulls(t *testing.T) {
	path := seedSQLite(t, `INSERT INTO Photos VALUES (7, '/img/raw.jpg', NULL, 100, NULL)`)

	repo, _ := NewSQLPhotoRepository(sqliteConfig(path), nil)
	photos, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(photos) != 1 {
		t.Fatalf("len(photos) = %d, want 1", len(photos))
	}
	if photos[0].CompressedPath != "" || photos[0].CompressedSize != 0 {
		t.Errorf("NULL columns = %+v, want zero values", photos[0])
	}
	if photos[0].OriginalSizeMissing || !photos[0].CompressedSizeMissing {
		t.Errorf("missing flags = %v/%v, want false/true", photos[0].OriginalSizeMissing, photos[0].CompressedSizeMissing)
	}
	if got := photos[0].Fields(); got[3] != "100" || got[4] != "" {
		t.Errorf("size fields = %q, %q, want \"100\", \"\"", got[3], got[4])
	}
}

func TestSQLPhotoRepository_FindAll_MissingTable(t *testing.T) {
	cfg := sqliteConfig(seedSQLite(t))
	cfg.Table = "Pictures"

	repo, _ := NewSQLPhotoRepository(cfg, nil)
	if _, err := repo.FindAll(context.Background()); err == nil {
		t.Error("expected error for missing table")
	}
}

func TestSQLPhotoRepository_FindAll_Unreachable(t *testing.T) {
	cfg := sqliteConfig(filepath.Join(t.TempDir(), "no", "such", "dir", "photos.db"))

	repo, _ := NewSQLPhotoRepository(cfg, nil)
	photos, err := repo.FindAll(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable database")
	}
	if photos != nil {
		t.Errorf("photos = %v, want nil", photos)
	}
}

func TestSQLPhotoRepository_Query(t *testing.T) {
	repo, _ := NewSQLPhotoRepository(&config.DatabaseConfig{Driver: config.DriverMySQL, Table: "Photos"}, nil)

	expected := "SELECT id, original_path, compressed_path, original_size, compressed_size FROM Photos"
	if got := repo.Query(); got != expected {
		t.Errorf("Query() = %q, want %q", got, expected)
	}
}

func TestSQLPhotoRepository_DSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		contains []string
	}{
		{
			name: "mysql",
			cfg: config.DatabaseConfig{
				Driver: config.DriverMySQL, Host: "localhost", User: "root",
				Password: "pw", Database: "JupiterDB", ConnectTimeout: "10s",
			},
			contains: []string{"root:pw@tcp(localhost:3306)/JupiterDB", "timeout=10s"},
		},
		{
			name: "postgres",
			cfg: config.DatabaseConfig{
				Driver: config.DriverPostgres, Host: "db", Port: 6543, User: "viewer",
				Password: "it's", Database: "photos", ConnectTimeout: "3s",
			},
			contains: []string{"host='db'", "port=6543", "dbname='photos'", "user='viewer'", `password='it\'s'`, "connect_timeout=3"},
		},
		{
			name:     "sqlite",
			cfg:      config.DatabaseConfig{Driver: config.DriverSQLite, Database: "/tmp/photos.db"},
			contains: []string{"file:/tmp/photos.db?mode=ro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewSQLPhotoRepository(&tt.cfg, nil)
			if err != nil {
				t.Fatalf("NewSQLPhotoRepository() error = %v", err)
			}
			dsn := repo.DSN()
			for _, want := range tt.contains {
				if !strings.Contains(dsn, want) {
					t.Errorf("DSN() = %q, missing %q", dsn, want)
				}
			}
		})
	}
}

func TestSQLPhotoRepository_PostgresDSN_Parses(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "empty user",
			cfg:  config.DatabaseConfig{Host: "db", Password: "pw", Database: "photos"},
		},
		{
			name: "database with space",
			cfg:  config.DatabaseConfig{Host: "db", User: "viewer", Password: "pw", Database: "my photos"},
		},
		{
			name: "quotes and backslashes",
			cfg:  config.DatabaseConfig{Host: "db", User: `o'brien`, Password: `p\w' x=1`, Database: "photos"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Driver = config.DriverPostgres
			tt.cfg.ConnectTimeout = "4s"

			pc, err := pgconn.ParseConfig(dataSourceName(&tt.cfg))
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			if pc.Host != tt.cfg.Host {
				t.Errorf("Host = %q, want %q", pc.Host, tt.cfg.Host)
			}
			if pc.Port != 5432 {
				t.Errorf("Port = %d, want 5432", pc.Port)
			}
			if pc.Database != tt.cfg.Database {
				t.Errorf("Database = %q, want %q", pc.Database, tt.cfg.Database)
			}
			if tt.cfg.User != "" && pc.User != tt.cfg.User {
				t.Errorf("User = %q, want %q", pc.User, tt.cfg.User)
			}
			if pc.Password != tt.cfg.Password {
				t.Errorf("Password = %q, want %q", pc.Password, tt.cfg.Password)
			}
			if pc.ConnectTimeout != 4*time.Second {
				t.Errorf("ConnectTimeout = %v, want 4s", pc.ConnectTimeout)
			}
		})
	}
}

func TestSQLPhotoRepository_FindAll_DoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.db")

	repo, _ := NewSQLPhotoRepository(sqliteConfig(path), nil)
	if _, err := repo.FindAll(context.Background()); err == nil {
		t.Error("expected error for missing database file")
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(%q) error = %v, want not exist", path, err)
	}
}

func TestSqlitePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/photos.db", "/tmp/photos.db"},
		{"photos.db", "photos.db"},
		{"/tmp/a?b#c%d.db", "/tmp/a%3fb%23c%25d.db"},
	}

	for _, tt := range tests {
		if got := sqlitePath(tt.path); got != tt.want {
			t.Errorf("sqlitePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNewSQLPhotoRepository_UnsupportedDriver(t *testing.T) {
	if _, err := NewSQLPhotoRepository(&config.DatabaseConfig{Driver: config.DriverMongoDB}, nil); err == nil {
		t.Error("expected error for non-SQL driver")
	}
}

func TestNewPhotoRepository(t *testing.T) {
	tests := []struct {
		driver  string
		wantErr bool
	}{
		{config.DriverMySQL, false},
		{config.DriverPostgres, false},
		{config.DriverSQLite, false},
		{config.DriverMongoDB, false},
		{"oracle", true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			repo, err := NewPhotoRepository(&config.DatabaseConfig{Driver: tt.driver, Table: "Photos"}, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPhotoRepository() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && repo == nil {
				t.Error("repository should not be nil")
			}
		})
	}
}
