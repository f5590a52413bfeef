package repository

import (
	"context"

	"github.com/google/uuid"

	"pointboard/internal/model"
)

// CommentQuery narrows a comment listing. Zero fields are not constrained.
type CommentQuery struct {
	PointID         *uuid.UUID
	BackgroundColor *string
	TextContains    string
}

// CommentRepository defines data access for comments.
type CommentRepository interface {
	Repository[model.Comment]

	// ListByPointID returns the comments attached to pointID, each with its parent Point populated.
	ListByPointID(ctx context.Context, pointID uuid.UUID) ([]model.Comment, error)

	// List returns the comments matching q.
	List(ctx context.Context, q CommentQuery) ([]model.Comment, error)
}
