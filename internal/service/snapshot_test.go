package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"nameapi/internal/model"
	repoMocks "nameapi/internal/repository/mocks"
	"nameapi/internal/storage"
	storeMocks "nameapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshotService_Create(t *testing.T) {
	ctx := context.Background()
	items := []model.Name{{ID: 1, Name: "gio", LastName: "utsu"}, {ID: 2, Name: "tatia", LastName: "tabatadze"}}
	isSnapshotKey := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "snapshots/") && strings.HasSuffix(key, ".json")
	})
	echoKey := func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
		return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType}
	}

	tests := []struct {
		name       string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockNameRepository)
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockNameRepository) {
				mRepo.On("List", ctx).Return(items, nil)
				mStore.On("Put", ctx, isSnapshotKey, mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == "application/json" && opt.Metadata["record-count"] == "2" && opt.Size > 0
				})).Return(echoKey, nil)
				mStore.On("PresignGet", ctx, isSnapshotKey, SnapshotURLExpiry).Return("https://minio.local/snap", nil)
			},
		},
		{
			name: "list error",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockNameRepository) {
				mRepo.On("List", ctx).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "list names: db fail",
		},
		{
			name: "storage error",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockNameRepository) {
				mRepo.On("List", ctx).Return(items, nil)
				mStore.On("Put", ctx, isSnapshotKey, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name: "presign error with successful rollback",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockNameRepository) {
				mRepo.On("List", ctx).Return(items, nil)
				mStore.On("Put", ctx, isSnapshotKey, mock.Anything, mock.Anything).Return(echoKey, nil)
				mStore.On("PresignGet", ctx, isSnapshotKey, SnapshotURLExpiry).Return("", errors.New("sign fail"))
				mStore.On("Delete", ctx, isSnapshotKey).Return(nil)
			},
			wantErrMsg: "presign failed: sign fail",
		},
		{
			name: "presign error with failed rollback",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockNameRepository) {
				mRepo.On("List", ctx).Return(items, nil)
				mStore.On("Put", ctx, isSnapshotKey, mock.Anything, mock.Anything).Return(echoKey, nil)
				mStore.On("PresignGet", ctx, isSnapshotKey, SnapshotURLExpiry).Return("", errors.New("sign fail"))
				mStore.On("Delete", ctx, isSnapshotKey).Return(errors.New("delete fail"))
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockNameRepository)
			svc := NewSnapshotService(mStore, mRepo)
			tt.setupMocks(mStore, mRepo)

			res, err := svc.Create(ctx)

			if tt.wantErrMsg != "" {
				assert.ErrorContains(t, err, tt.wantErrMsg)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 2, res.Count)
				assert.Equal(t, "https://minio.local/snap", res.URL)
				assert.True(t, strings.HasPrefix(res.Key, "snapshots/"))
				assert.Positive(t, res.Size)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestSnapshotService_PayloadShape(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockNameRepository)
	mRepo.On("List", ctx).Return([]model.Name{{ID: 1, Name: "gio", LastName: "utsu"}}, nil)

	var uploaded []map[string]any
	mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			require.NoError(t, json.NewDecoder(r).Decode(&uploaded))
			return storage.ObjectInfo{Key: key, Size: opt.Size}
		}, nil)
	mStore.On("PresignGet", ctx, mock.Anything, SnapshotURLExpiry).Return("u", nil)

	_, err := NewSnapshotService(mStore, mRepo).Create(ctx)

	require.NoError(t, err)
	require.Len(t, uploaded, 1)
	assert.Equal(t, float64(1), uploaded[0]["id"])
	assert.Equal(t, "gio", uploaded[0]["name"])
	assert.Equal(t, "utsu", uploaded[0]["last_name"])
}

func TestSnapshotService_Disabled(t *testing.T) {
	svc := NewSnapshotService(nil, new(repoMocks.MockNameRepository))

	res, err := svc.Create(context.Background())

	assert.ErrorIs(t, err, ErrSnapshotsDisabled)
	assert.Nil(t, res)
}
