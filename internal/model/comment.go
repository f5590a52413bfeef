package model

import "github.com/google/uuid"

// DefaultCommentBackground is stored when a comment is persisted without a background color.
const DefaultCommentBackground = "#FFFFFF"

// Comment is a note attached to exactly one point.
// Point is the parent view, populated only by joining queries; it stays nil
// when the referenced point does not exist.
type Comment struct {
	ID              uuid.UUID `json:"id"`
	Text            string    `json:"text"`
	BackgroundColor string    `json:"backgroundColor"`
	PointID         uuid.UUID `json:"pointId"`
	Point           *Point    `json:"point,omitempty"`
}

func (c Comment) EntityID() uuid.UUID { return c.ID }

// CommentInput is the create/update payload for a comment.
type CommentInput struct {
	PointID         uuid.UUID `json:"pointId" validate:"required"`
	Text            string    `json:"text" validate:"notblank"`
	BackgroundColor string    `json:"backgroundColor" validate:"required,len=7,startswith=#,hexcolor"`
}

// Apply overwrites every mutable field of c with the payload values.
func (in CommentInput) Apply(c *Comment) {
	c.Text = in.Text
	c.BackgroundColor = in.BackgroundColor
	c.PointID = in.PointID
}
