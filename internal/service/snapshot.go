package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"

	"nameapi/internal/repository"
	"nameapi/internal/storage"
)

// SnapshotURLExpiry is how long the download link of a snapshot stays valid.
const SnapshotURLExpiry = 15 * time.Minute

var ErrSnapshotsDisabled = errors.New("snapshot storage is not configured")

// SnapshotResult describes a stored snapshot of all records.
type SnapshotResult struct {
	Key   string `json:"key"`
	Size  int64  `json:"size"`
	Count int    `json:"count"`
	URL   string `json:"url"`
}

// SnapshotService exports the record store to object storage.
type SnapshotService interface {
	// Create serializes every record as a JSON array and uploads it under snapshots/<uuid>.json.
	Create(ctx context.Context) (*SnapshotResult, error)
}

type snapshotService struct {
	store storage.Storage
	repo  repository.NameRepository
}

// NewSnapshotService constructs a SnapshotService. A nil store disables snapshots.
func NewSnapshotService(store storage.Storage, repo repository.NameRepository) SnapshotService {
	return &snapshotService{store: store, repo: repo}
}

func (s *snapshotService) Create(ctx context.Context) (*SnapshotResult, error) {
	if s.store == nil {
		return nil, ErrSnapshotsDisabled
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list names: %w", err)
	}
	body, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := path.Join("snapshots", uuid.NewString()+".json")
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"record-count": strconv.Itoa(len(items)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	u, err := s.store.PresignGet(ctx, info.Key, SnapshotURLExpiry)
	if err != nil {
		// Rollback: an unreachable snapshot is useless to the caller
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &SnapshotResult{
		Key:   info.Key,
		Size:  info.Size,
		Count: len(items),
		URL:   u,
	}, nil
}
