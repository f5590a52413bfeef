package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pointboard/internal/service"
	"pointboard/internal/storage"
)

type MockSnapshotService struct {
	mock.Mock
}

var _ service.SnapshotService = (*MockSnapshotService)(nil)

func (m *MockSnapshotService) Take(ctx context.Context) (*service.SnapshotResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SnapshotResult), args.Error(1)
}

func (m *MockSnapshotService) Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, id)
	var rc io.ReadCloser
	if v := args.Get(0); v != nil {
		rc = v.(io.ReadCloser)
	}
	return rc, args.Get(1).(storage.ObjectInfo), args.Error(2)
}
