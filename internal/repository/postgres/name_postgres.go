package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nameapi/internal/model"
	"nameapi/internal/repository"
)

// NamePostgres is a PostgreSQL implementation of repository.NameRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type NamePostgres struct {
	db *sql.DB
}

// NewNamePostgres creates a new NamePostgres repository.
func NewNamePostgres(db *sql.DB) *NamePostgres {
	return &NamePostgres{db: db}
}

var _ repository.NameRepository = (*NamePostgres)(nil)

// Create inserts a new row and returns it with the ID issued by the sequence.
func (r *NamePostgres) Create(ctx context.Context, n *model.Name) (*model.Name, error) {
	const q = `
		INSERT INTO names (name, last_name)
		VALUES ($1, $2)
		RETURNING id, name, last_name
	`
	var out model.Name
	if err := r.db.QueryRowContext(ctx, q, n.Name, n.LastName).Scan(
		&out.ID,
		&out.Name,
		&out.LastName,
	); err != nil {
		return nil, fmt.Errorf("insert name: %w", err)
	}
	return &out, nil
}

// FindByID fetches a single row by its ID.
func (r *NamePostgres) FindByID(ctx context.Context, id int64) (*model.Name, error) {
	const q = `
		SELECT id, name, last_name
		FROM names
		WHERE id = $1
	`
	var out model.Name
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&out.ID,
		&out.Name,
		&out.LastName,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select name: %w", err)
	}
	return &out, nil
}

// List returns every row ordered by ID.
func (r *NamePostgres) List(ctx context.Context) ([]model.Name, error) {
	const q = `
		SELECT id, name, last_name
		FROM names
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list names: %w", err)
	}
	defer rows.Close()

	items := make([]model.Name, 0)
	for rows.Next() {
		var n model.Name
		if err := rows.Scan(&n.ID, &n.Name, &n.LastName); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites both name fields in a single statement.
func (r *NamePostgres) Update(ctx context.Context, n *model.Name) (*model.Name, error) {
	const q = `
		UPDATE names
		SET name = $1, last_name = $2
		WHERE id = $3
		RETURNING id, name, last_name
	`
	var out model.Name
	if err := r.db.QueryRowContext(ctx, q, n.Name, n.LastName, n.ID).Scan(
		&out.ID,
		&out.Name,
		&out.LastName,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("update name: %w", err)
	}
	return &out, nil
}

// Delete removes a row by ID and reports ErrNotFound when nothing was deleted.
func (r *NamePostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM names WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete name: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete name: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Count returns the total number of rows.
func (r *NamePostgres) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM names`
	var total int
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, fmt.Errorf("count names: %w", err)
	}
	return total, nil
}
