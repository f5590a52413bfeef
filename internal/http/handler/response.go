package handler

import (
	"github.com/google/uuid"

	"pointboard/internal/model"
)

// pointShort is the scalar-only view of a point.
type pointShort struct {
	ID     uuid.UUID `json:"id"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Radius float64   `json:"radius"`
	Color  string    `json:"color"`
}

// pointFull adds the short views of the point's comments.
type pointFull struct {
	pointShort
	Comments []commentShort `json:"comments"`
}

type commentShort struct {
	ID              uuid.UUID `json:"id"`
	Text            string    `json:"text"`
	BackgroundColor string    `json:"backgroundColor"`
	PointID         uuid.UUID `json:"pointId"`
}

// commentFull embeds the parent point; Point is omitted when the parent no longer exists.
type commentFull struct {
	commentShort
	Point *pointShort `json:"point,omitempty"`
}

type snapshotResponse struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Points   int    `json:"points"`
	Comments int    `json:"comments"`
}

func toPointShort(p model.Point) pointShort {
	return pointShort{ID: p.ID, X: p.X, Y: p.Y, Radius: p.Radius, Color: p.Color}
}

func toPointFull(p model.Point) pointFull {
	comments := make([]commentShort, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, toCommentShort(c))
	}
	return pointFull{pointShort: toPointShort(p), Comments: comments}
}

func toCommentShort(c model.Comment) commentShort {
	return commentShort{ID: c.ID, Text: c.Text, BackgroundColor: c.BackgroundColor, PointID: c.PointID}
}

func toCommentFull(c model.Comment) commentFull {
	res := commentFull{commentShort: toCommentShort(c)}
	if c.Point != nil {
		p := toPointShort(*c.Point)
		res.Point = &p
	}
	return res
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
