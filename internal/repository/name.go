package repository

import (
	"context"
	"errors"

	"nameapi/internal/model"
)

// ErrNotFound is returned by every implementation when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// NameRepository defines data access for names. No business logic here,
// validation happens before a call reaches the repository.
type NameRepository interface {
	// Create stores a new record. The ID of the input is ignored; the stored
	// record, carrying its newly issued ID, is returned.
	Create(ctx context.Context, n *model.Name) (*model.Name, error)

	// FindByID returns a record by its ID.
	FindByID(ctx context.Context, id int64) (*model.Name, error)

	// List returns all records ordered by ID (insertion order).
	List(ctx context.Context) ([]model.Name, error)

	// Update replaces name and last name of the record identified by n.ID.
	Update(ctx context.Context, n *model.Name) (*model.Name, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
