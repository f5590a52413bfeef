package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pointboard/internal/model"
	"pointboard/internal/repository"
)

type MockPointRepository struct {
	mock.Mock
}

var _ repository.PointRepository = (*MockPointRepository)(nil)

func (m *MockPointRepository) GetAll(ctx context.Context) ([]model.Point, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Point), args.Error(1)
}

func (m *MockPointRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Point, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

func (m *MockPointRepository) Create(ctx context.Context, p *model.Point) (uuid.UUID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPointRepository) CreateMany(ctx context.Context, ps []model.Point) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func (m *MockPointRepository) Update(ctx context.Context, p *model.Point) (*model.Point, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

func (m *MockPointRepository) Delete(ctx context.Context, p *model.Point) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPointRepository) FindOne(ctx context.Context, q repository.PointQuery) (*model.Point, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

func (m *MockPointRepository) ListWithComments(ctx context.Context) ([]model.Point, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Point), args.Error(1)
}
