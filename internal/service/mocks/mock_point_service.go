package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pointboard/internal/model"
	"pointboard/internal/repository"
	"pointboard/internal/service"
)

type MockPointService struct {
	mock.Mock
}

var _ service.PointService = (*MockPointService)(nil)

func (m *MockPointService) List(ctx context.Context) ([]model.Point, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Point), args.Error(1)
}

func (m *MockPointService) ListWithComments(ctx context.Context) ([]model.Point, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Point), args.Error(1)
}

func (m *MockPointService) Find(ctx context.Context, q repository.PointQuery) (*model.Point, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

func (m *MockPointService) Get(ctx context.Context, id uuid.UUID) (*model.Point, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

func (m *MockPointService) GetWithComments(ctx context.Context, id uuid.UUID) (*model.Point, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

func (m *MockPointService) Create(ctx context.Context, in model.PointInput) (*model.Point, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

func (m *MockPointService) Update(ctx context.Context, id uuid.UUID, in model.PointInput) (*model.Point, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

func (m *MockPointService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
