package repository

import (
	"context"

	"pointboard/internal/model"
)

// PointQuery narrows a point lookup. Nil fields are not constrained.
type PointQuery struct {
	Color     *string
	X         *float64
	Y         *float64
	MinRadius *float64
}

// PointRepository defines data access for points.
type PointRepository interface {
	Repository[model.Point]

	// FindOne returns the single point matching q. It returns ErrNotFound when none
	// match and ErrMultipleResults when more than one does.
	FindOne(ctx context.Context, q PointQuery) (*model.Point, error)

	// ListWithComments returns only points that have at least one comment,
	// with their Comments populated.
	ListWithComments(ctx context.Context) ([]model.Point, error)
}
