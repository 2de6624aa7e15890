package photo

import "context"

// Repository defines read access to the photo table.
type Repository interface {
	// FindAll returns every photo in the order the store yields them.
	// Implementations open one connection, run one statement and close
	// the connection before returning. A partial read is an error.
	FindAll(ctx context.Context) ([]*Photo, error)
}
