package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-memdb"

	"nameapi/internal/model"
	"nameapi/internal/repository"
)

const (
	tableNames = "names" // also, memdb table name
	indexID    = "id"
)

func nameSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableNames: {
				Name: tableNames,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// NameMemory is an in-process implementation of repository.NameRepository backed by go-memdb.
// Stored objects are never mutated in place; every write inserts a fresh copy whose
// strings are cloned, so callers may pass values backed by reusable buffers.
type NameMemory struct {
	db *memdb.MemDB
	// lastID is only touched inside write transactions, which memdb serializes.
	lastID int64
}

// NewNameMemory creates an empty in-memory store.
func NewNameMemory() (*NameMemory, error) {
	db, err := memdb.NewMemDB(nameSchema())
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return &NameMemory{db: db}, nil
}

var _ repository.NameRepository = (*NameMemory)(nil)

func (r *NameMemory) Create(_ context.Context, n *model.Name) (*model.Name, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	r.lastID++
	stored := &model.Name{ID: r.lastID, Name: strings.Clone(n.Name), LastName: strings.Clone(n.LastName)}
	if err := txn.Insert(tableNames, stored); err != nil {
		r.lastID--
		return nil, fmt.Errorf("insert name: %w", err)
	}
	txn.Commit()

	out := *stored
	return &out, nil
}

func (r *NameMemory) FindByID(_ context.Context, id int64) (*model.Name, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	stored, err := first(txn, id)
	if err != nil {
		return nil, err
	}
	out := *stored
	return &out, nil
}

func (r *NameMemory) List(_ context.Context) ([]model.Name, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableNames, indexID)
	if err != nil {
		return nil, fmt.Errorf("list names: %w", err)
	}

	items := make([]model.Name, 0)
	for raw := it.Next(); raw != nil; raw = it.Next() {
		items = append(items, *raw.(*model.Name))
	}
	// the int indexer does not encode order-preserving keys
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *NameMemory) Update(_ context.Context, n *model.Name) (*model.Name, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	if _, err := first(txn, n.ID); err != nil {
		return nil, err
	}
	stored := &model.Name{ID: n.ID, Name: strings.Clone(n.Name), LastName: strings.Clone(n.LastName)}
	if err := txn.Insert(tableNames, stored); err != nil {
		return nil, fmt.Errorf("update name: %w", err)
	}
	txn.Commit()

	out := *stored
	return &out, nil
}

func (r *NameMemory) Delete(_ context.Context, id int64) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	stored, err := first(txn, id)
	if err != nil {
		return err
	}
	if err := txn.Delete(tableNames, stored); err != nil {
		return fmt.Errorf("delete name: %w", err)
	}
	txn.Commit()
	return nil
}

// Count walks the id index; memdb keeps no row counter, and the table stays small.
func (r *NameMemory) Count(_ context.Context) (int, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableNames, indexID)
	if err != nil {
		return 0, fmt.Errorf("count names: %w", err)
	}
	total := 0
	for raw := it.Next(); raw != nil; raw = it.Next() {
		total++
	}
	return total, nil
}

func first(txn *memdb.Txn, id int64) (*model.Name, error) {
	raw, err := txn.First(tableNames, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("lookup name: %w", err)
	}
	if raw == nil {
		return nil, repository.ErrNotFound
	}
	stored, ok := raw.(*model.Name)
	if !ok {
		return nil, fmt.Errorf("unexpected %T in %s table", raw, tableNames)
	}
	return stored, nil
}
