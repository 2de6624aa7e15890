// Package repository provides photo table access for the supported databases.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photoview/domain/photo"
	"photoview/infrastructure/config"
)

// photoDocument is the MongoDB document structure for photos.
// Field names match the SQL column names.
type photoDocument struct {
	ID             int64  `bson:"_id"`
	OriginalPath   string `bson:"original_path"`
	CompressedPath string `bson:"compressed_path"`
	OriginalSize   *int64 `bson:"original_size"`
	CompressedSize *int64 `bson:"compressed_size"`
}

// MongoDB holds a MongoDB client bound to one database.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *slog.Logger
}

// MongoClientOptions builds client options from the database configuration.
func MongoClientOptions(cfg *config.DatabaseConfig) *options.ClientOptions {
	opts := options.Client().ApplyURI("mongodb://" + cfg.Addr())
	if cfg.User != "" {
		opts.SetAuth(options.Credential{
			Username:   cfg.User,
			Password:   cfg.Password,
			AuthSource: cfg.Database,
		})
	}
	if timeout := cfg.ConnectTimeoutDuration(); timeout > 0 {
		opts.SetConnectTimeout(timeout)
		opts.SetServerSelectionTimeout(timeout)
	}
	// Single read, no pool to keep warm
	opts.SetMaxPoolSize(1)
	return opts
}

// NewMongoDB creates a new MongoDB connection and verifies it with a ping.
func NewMongoDB(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*MongoDB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client, err := mongo.Connect(ctx, MongoClientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		// Disconnect on ping failure
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Debug("Connected to MongoDB", "addr", cfg.Addr(), "database", cfg.Database)

	return &MongoDB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   logger,
	}, nil
}

// Close disconnects from MongoDB.
func (m *MongoDB) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

// Collection returns a collection by name.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// MongoPhotoRepository implements photo.Repository using a MongoDB collection.
// Each FindAll connects, reads every document and disconnects.
type MongoPhotoRepository struct {
	cfg    config.DatabaseConfig
	logger *slog.Logger
}

// NewMongoPhotoRepository creates a new MongoDB-based photo repository.
func NewMongoPhotoRepository(cfg *config.DatabaseConfig, logger *slog.Logger) *MongoPhotoRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoPhotoRepository{cfg: *cfg, logger: logger}
}

// FindAll retrieves all photo documents in natural order.
func (r *MongoPhotoRepository) FindAll(ctx context.Context) ([]*photo.Photo, error) {
	if timeout := r.cfg.ConnectTimeoutDuration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	db, err := NewMongoDB(ctx, &r.cfg, r.logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			r.logger.Warn("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	projection := bson.D{
		{Key: "_id", Value: 1},
		{Key: "original_path", Value: 1},
		{Key: "compressed_path", Value: 1},
		{Key: "original_size", Value: 1},
		{Key: "compressed_size", Value: 1},
	}
	cursor, err := db.Collection(r.cfg.Table).Find(ctx, bson.D{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("failed to find photos: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []photoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}

	photos := make([]*photo.Photo, len(docs))
	for i := range docs {
		photos[i] = documentToPhoto(&docs[i])
	}

	r.logger.Info("Photos loaded", "driver", config.DriverMongoDB, "collection", r.cfg.Table, "count", len(photos))
	return photos, nil
}

// documentToPhoto converts a MongoDB document to a domain Photo.
// Absent or null sizes are marked missing.
func documentToPhoto(doc *photoDocument) *photo.Photo {
	p := &photo.Photo{
		ID:                    doc.ID,
		OriginalPath:          doc.OriginalPath,
		CompressedPath:        doc.CompressedPath,
		OriginalSizeMissing:   doc.OriginalSize == nil,
		CompressedSizeMissing: doc.CompressedSize == nil,
	}
	if doc.OriginalSize != nil {
		p.OriginalSize = *doc.OriginalSize
	}
	if doc.CompressedSize != nil {
		p.CompressedSize = *doc.CompressedSize
	}
	return p
}

// Ensure MongoPhotoRepository implements photo.Repository
var _ photo.Repository = (*MongoPhotoRepository)(nil)
