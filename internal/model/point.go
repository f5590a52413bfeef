package model

import "github.com/google/uuid"

// DefaultPointColor is stored when a point is persisted without a color.
const DefaultPointColor = "#000000"

// Point is a positioned, colored circle on the board.
// Comments is only populated by queries that join the comments table.
type Point struct {
	ID       uuid.UUID `json:"id"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Radius   float64   `json:"radius"`
	Color    string    `json:"color"`
	Comments []Comment `json:"comments,omitempty"`
}

func (p Point) EntityID() uuid.UUID { return p.ID }

// PointInput is the create/update payload for a point.
type PointInput struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius" validate:"gt=0"`
	Color  string  `json:"color" validate:"required,len=7,startswith=#,hexcolor"`
}

// Apply overwrites every mutable field of p with the payload values.
func (in PointInput) Apply(p *Point) {
	p.X = in.X
	p.Y = in.Y
	p.Radius = in.Radius
	p.Color = in.Color
}
