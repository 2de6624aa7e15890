package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"photoview/domain/photo"
	"photoview/infrastructure/config"
)

// selectColumns is the fixed projection; column order maps to grid columns 0-4.
const selectColumns = "id, original_path, compressed_path, original_size, compressed_size"

// driverNames maps configured drivers to registered database/sql driver names.
var driverNames = map[string]string{
	config.DriverMySQL:    "mysql",
	config.DriverPostgres: "pgx",
	config.DriverSQLite:   "sqlite",
}

// SQLPhotoRepository implements photo.Repository over database/sql.
// Each FindAll opens its own connection and closes it before returning.
type SQLPhotoRepository struct {
	cfg    config.DatabaseConfig
	logger *slog.Logger
}

// NewSQLPhotoRepository creates a repository for the mysql, postgres or sqlite driver.
func NewSQLPhotoRepository(cfg *config.DatabaseConfig, logger *slog.Logger) (*SQLPhotoRepository, error) {
	if _, ok := driverNames[cfg.Driver]; !ok {
		return nil, fmt.Errorf("unsupported SQL driver: %s", cfg.Driver)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLPhotoRepository{cfg: *cfg, logger: logger}, nil
}

// Query returns the statement FindAll executes.
func (r *SQLPhotoRepository) Query() string {
	return "SELECT " + selectColumns + " FROM " + r.cfg.Table
}

// DSN returns the driver-specific data source name.
func (r *SQLPhotoRepository) DSN() string {
	return dataSourceName(&r.cfg)
}

func dataSourceName(cfg *config.DatabaseConfig) string {
	timeout := cfg.ConnectTimeoutDuration()

	switch cfg.Driver {
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = cfg.Addr()
		mc.DBName = cfg.Database
		mc.Timeout = timeout
		return mc.FormatDSN()
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
			quotePgValue(cfg.Host), cfg.EffectivePort(), quotePgValue(cfg.Database),
			quotePgValue(cfg.User), quotePgValue(cfg.Password))
		if timeout > 0 {
			dsn += fmt.Sprintf(" connect_timeout=%d", int(timeout.Round(time.Second)/time.Second))
		}
		return dsn
	default:
		// Read-only so a mistyped path is not created as an empty database
		return "file:" + sqlitePath(cfg.Database) + "?mode=ro"
	}
}

// sqlitePath escapes the characters SQLite treats specially in a file URI.
func sqlitePath(path string) string {
	return strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(filepath.ToSlash(path))
}

// quotePgValue quotes a keyword/value connection string value.
func quotePgValue(v string) string {
	if v == "" {
		return "''"
	}
	out := make([]byte, 0, len(v)+2)
	out = append(out, '\'')
	for i := 0; i < len(v); i++ {
		if v[i] == '\'' || v[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, v[i])
	}
	return string(append(out, '\''))
}

// FindAll opens one connection, runs the fixed SELECT and closes the connection.
func (r *SQLPhotoRepository) FindAll(ctx context.Context) ([]*photo.Photo, error) {
	if timeout := r.cfg.ConnectTimeoutDuration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	db, err := sql.Open(driverNames[r.cfg.Driver], r.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", r.cfg.Driver, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			r.logger.Warn("Failed to close database", "driver", r.cfg.Driver, "error", cerr)
		}
	}()

	// One connection, used once, never reused
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", r.cfg.Driver, err)
	}

	rows, err := db.QueryContext(ctx, r.Query())
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	var photos []*photo.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo row %d: %w", len(photos), err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read photos: %w", err)
	}

	r.logger.Info("Photos loaded", "driver", r.cfg.Driver, "table", r.cfg.Table, "count", len(photos))
	return photos, nil
}

func scanPhoto(rows *sql.Rows) (*photo.Photo, error) {
	var (
		id                           int64
		originalPath, compressedPath sql.NullString
		originalSize, compressedSize sql.NullInt64
	)
	if err := rows.Scan(&id, &originalPath, &compressedPath, &originalSize, &compressedSize); err != nil {
		return nil, err
	}
	return &photo.Photo{
		ID:             id,
		OriginalPath:   originalPath.String,
		CompressedPath: compressedPath.String,
		OriginalSize:   originalSize.Int64,
		CompressedSize: compressedSize.Int64,

		OriginalSizeMissing:   !originalSize.Valid,
		CompressedSizeMissing: !compressedSize.Valid,
	}, nil
}

// Ensure SQLPhotoRepository implements photo.Repository
var _ photo.Repository = (*SQLPhotoRepository)(nil)
