package photo

import (
	"context"
	"errors"
	"fmt"
)

// Common errors for photo operations.
var (
	ErrDatabaseUnavailable = errors.New("photo database unavailable")
	ErrMissingFile         = errors.New("photo file does not exist")
	ErrUnreadableImage     = errors.New("photo file is not a readable image")
)

// Service provides read access to the photo snapshot.
type Service struct {
	repo Repository
}

// NewService creates a new photo service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListPhotos returns all photos in query order. Unlike most listings the
// result is not sorted: the table mirrors the database's own order.
func (s *Service) ListPhotos(ctx context.Context) ([]*Photo, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("%w: no repository configured", ErrDatabaseUnavailable)
	}

	photos, err := s.repo.FindAll(ctx)
	if err != nil {
		if errors.Is(err, ErrDatabaseUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return photos, nil
}
