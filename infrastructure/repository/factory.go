package repository

import (
	"fmt"
	"log/slog"

	"photoview/domain/photo"
	"photoview/infrastructure/config"
)

// NewPhotoRepository returns the repository for the configured driver.
func NewPhotoRepository(cfg *config.DatabaseConfig, logger *slog.Logger) (photo.Repository, error) {
	switch cfg.Driver {
	case config.DriverMongoDB:
		return NewMongoPhotoRepository(cfg, logger), nil
	case config.DriverMySQL, config.DriverPostgres, config.DriverSQLite:
		return NewSQLPhotoRepository(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}
