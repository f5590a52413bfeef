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

// CommentService defines the use cases for handling comments.
type CommentService interface {
	// List returns every comment, or the comments matching q when it constrains
	// anything. An empty result is reported as ErrNotFound.
	List(ctx context.Context, q repository.CommentQuery) ([]model.Comment, error)

	// ListForPoint returns the comments attached to pointID, or ErrNotFound when there are none.
	ListForPoint(ctx context.Context, pointID uuid.UUID) ([]model.Comment, error)

	// Get returns a single comment with its parent point.
	Get(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// Create validates in and stores a new comment with a fresh ID.
	// The referenced point is not required to exist.
	Create(ctx context.Context, in model.CommentInput) (*model.Comment, error)

	// Update validates in and overwrites every field of an existing comment.
	Update(ctx context.Context, id uuid.UUID, in model.CommentInput) (*model.Comment, error)

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentService struct {
	comments repository.CommentRepository
	validate *validation.Validator
}

// NewCommentService constructs a new CommentService.
func NewCommentService(comments repository.CommentRepository, v *validation.Validator) CommentService {
	return &commentService{comments: comments, validate: v}
}

func (s *commentService) List(ctx context.Context, q repository.CommentQuery) ([]model.Comment, error) {
	var (
		items []model.Comment
		err   error
	)
	if q == (repository.CommentQuery{}) {
		items, err = s.comments.GetAll(ctx)
	} else {
		items, err = s.comments.List(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

// ListForPoint filters the full comment list in memory rather than through a store query.
func (s *commentService) ListForPoint(ctx context.Context, pointID uuid.UUID) ([]model.Comment, error) {
	all, err := s.comments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	items := make([]model.Comment, 0)
	for _, c := range all {
		if c.PointID == pointID {
			items = append(items, c)
		}
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

func (s *commentService) Get(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}

func (s *commentService) Create(ctx context.Context, in model.CommentInput) (*model.Comment, error) {
	if res := s.validate.Validate(in); !res.Valid() {
		return nil, &ValidationError{Fields: res.Errors}
	}

	c := &model.Comment{ID: uuid.New()}
	in.Apply(c)
	if _, err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (s *commentService) Update(ctx context.Context, id uuid.UUID, in model.CommentInput) (*model.Comment, error) {
	if res := s.validate.Validate(in); !res.Valid() {
		return nil, &ValidationError{Fields: res.Errors}
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(existing)
	existing.Point = nil

	updated, err := s.comments.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("comment %s not found after update: %w", id, ErrInconsistentState)
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return updated, nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, c); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
