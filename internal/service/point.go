package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pointboard/internal/model"
	"pointboard/internal/repository"
	"pointboard/internal/validation"
)

// PointService defines the use cases for handling points.
type PointService interface {
	// List returns all points. An empty board is reported as ErrNotFound.
	List(ctx context.Context) ([]model.Point, error)

	// ListWithComments returns the points that have comments, with comments populated.
	ListWithComments(ctx context.Context) ([]model.Point, error)

	// Find returns the single point matching q.
	Find(ctx context.Context, q repository.PointQuery) (*model.Point, error)

	// Get returns a single point by its ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Point, error)

	// GetWithComments returns a point with its comments populated.
	GetWithComments(ctx context.Context, id uuid.UUID) (*model.Point, error)

	// Create validates in and stores a new point with a fresh ID.
	Create(ctx context.Context, in model.PointInput) (*model.Point, error)

	// Update validates in and overwrites every field of an existing point.
	Update(ctx context.Context, id uuid.UUID, in model.PointInput) (*model.Point, error)

	// Delete removes a point. Its comments are left in place.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pointService struct {
	points   repository.PointRepository
	comments repository.CommentRepository
	validate *validation.Validator
}

// NewPointService constructs a new PointService.
func NewPointService(points repository.PointRepository, comments repository.CommentRepository, v *validation.Validator) PointService {
	return &pointService{points: points, comments: comments, validate: v}
}

func (s *pointService) List(ctx context.Context) ([]model.Point, error) {
	items, err := s.points.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list points: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

func (s *pointService) ListWithComments(ctx context.Context) ([]model.Point, error) {
	items, err := s.points.ListWithComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list points with comments: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

func (s *pointService) Find(ctx context.Context, q repository.PointQuery) (*model.Point, error) {
	p, err := s.points.FindOne(ctx, q)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrNotFound
	case errors.Is(err, repository.ErrMultipleResults):
		return nil, ErrMultipleResults
	case err != nil:
		return nil, fmt.Errorf("find point: %w", err)
	}
	return p, nil
}

func (s *pointService) Get(ctx context.Context, id uuid.UUID) (*model.Point, error) {
	p, err := s.points.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get point: %w", err)
	}
	return p, nil
}

func (s *pointService) GetWithComments(ctx context.Context, id uuid.UUID) (*model.Point, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPointID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments of point: %w", err)
	}
	p.Comments = comments
	return p, nil
}

func (s *pointService) Create(ctx context.Context, in model.PointInput) (*model.Point, error) {
	if res := s.validate.Validate(in); !res.Valid() {
		return nil, &ValidationError{Fields: res.Errors}
	}

	p := &model.Point{ID: uuid.New()}
	in.Apply(p)
	if _, err := s.points.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create point: %w", err)
	}
	return p, nil
}

func (s *pointService) Update(ctx context.Context, id uuid.UUID, in model.PointInput) (*model.Point, error) {
	if res := s.validate.Validate(in); !res.Valid() {
		return nil, &ValidationError{Fields: res.Errors}
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(existing)

	updated, err := s.points.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("point %s not found after update: %w", id, ErrInconsistentState)
		}
		return nil, fmt.Errorf("update point: %w", err)
	}
	return updated, nil
}

func (s *pointService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.points.Delete(ctx, p); err != nil {
		return fmt.Errorf("delete point: %w", err)
	}
	return nil
}
