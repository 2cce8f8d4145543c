package records

import (
	"context"

	"github.com/dmitrijs2005/registre/internal/server/models"
)

// Repository is the record store contract shared by both backends.
type Repository interface {
	// GetAll returns every record, newest first.
	GetAll(ctx context.Context) ([]models.Record, error)

	// Add persists a new record.
	Add(ctx context.Context, record *models.Record) error

	// Remove deletes the record with the given id. Unknown ids are a no-op.
	Remove(ctx context.Context, id string) error

	// Clear deletes every record.
	Clear(ctx context.Context) error
}
