package service

import (
	"context"
	"errors"

	"nameapi/internal/model"
	"nameapi/internal/repository"
)

var (
	ErrNotFound = errors.New("name not found")
)

// NameService defines the use cases for managing names.
type NameService interface {
	// Create validates the input and stores a new record.
	Create(ctx context.Context, in NameInput) (*model.Name, error)

	// Get returns a single record by its ID.
	Get(ctx context.Context, id int64) (*model.Name, error)

	// List returns all records in insertion order.
	List(ctx context.Context) ([]model.Name, error)

	// Update replaces both fields of an existing record. The record is looked up
	// before the input is validated, so an unknown ID is reported as ErrNotFound
	// even when the input is invalid.
	Update(ctx context.Context, id int64, in NameInput) (*model.Name, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id int64) error
}

type nameService struct {
	repo repository.NameRepository
}

// NewNameService constructs a new NameService.
func NewNameService(repo repository.NameRepository) NameService {
	return &nameService{repo: repo}
}

func (s *nameService) Create(ctx context.Context, in NameInput) (*model.Name, error) {
	valid, err := ValidateName(in.Name, in.LastName)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.Name{Name: valid.Name, LastName: valid.LastName})
}

func (s *nameService) Get(ctx context.Context, id int64) (*model.Name, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return n, nil
}

func (s *nameService) List(ctx context.Context) ([]model.Name, error) {
	return s.repo.List(ctx)
}

func (s *nameService) Update(ctx context.Context, id int64, in NameInput) (*model.Name, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, translate(err)
	}
	valid, err := ValidateName(in.Name, in.LastName)
	if err != nil {
		return nil, err
	}
	n, err := s.repo.Update(ctx, &model.Name{ID: id, Name: valid.Name, LastName: valid.LastName})
	if err != nil {
		return nil, translate(err)
	}
	return n, nil
}

func (s *nameService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id))
}

// translate maps repository errors onto service errors.
func translate(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
