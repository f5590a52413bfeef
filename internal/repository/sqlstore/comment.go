package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"pointboard/internal/model"
	"pointboard/internal/repository"
)

var commentMapping = Mapping[model.Comment]{
	Table:   "comments",
	Columns: []string{"id", "text", "background_color", "point_id"},
	Values: func(c *model.Comment) []any {
		bg := c.BackgroundColor
		if bg == "" {
			bg = model.DefaultCommentBackground
		}
		return []any{c.ID, c.Text, bg, c.PointID}
	},
	Scan: func(r rowScanner) (model.Comment, error) {
		var c model.Comment
		err := r.Scan(&c.ID, &c.Text, &c.BackgroundColor, &c.PointID)
		return c, err
	},
	SetID: func(c *model.Comment, id uuid.UUID) { c.ID = id },
}

const selectCommentWithPoint = `
	SELECT c.id, c.text, c.background_color, c.point_id,
	       p.id, p.x, p.y, p.radius, p.color
	FROM comments c
	LEFT JOIN points p ON p.id = c.point_id
`

// CommentStore is the SQL implementation of repository.CommentRepository.
type CommentStore struct {
	*Table[model.Comment]
}

// NewCommentStore creates a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{Table: NewTable(db, commentMapping)}
}

var _ repository.CommentRepository = (*CommentStore)(nil)

// GetByID fetches a comment together with its parent point, if that point still exists.
func (s *CommentStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	row := s.db.QueryRowContext(ctx, selectCommentWithPoint+" WHERE c.id = $1", id)
	c, err := scanCommentWithPoint(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update overwrites the comment and re-reads it with its parent point.
func (s *CommentStore) Update(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	if err := s.replace(ctx, c); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, c.ID)
}

// ListByPointID returns the comments of one point with the point joined in.
func (s *CommentStore) ListByPointID(ctx context.Context, pointID uuid.UUID) ([]model.Comment, error) {
	rows, err := s.db.QueryContext(ctx, selectCommentWithPoint+" WHERE c.point_id = $1", pointID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanCommentWithPoint(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// List returns the comments matching q. TextContains is a substring match;
// case sensitivity follows the backend's LIKE.
func (s *CommentStore) List(ctx context.Context, q repository.CommentQuery) ([]model.Comment, error) {
	var w where
	if q.PointID != nil {
		w.add("point_id = ?", *q.PointID)
	}
	if q.BackgroundColor != nil {
		w.add("background_color = ?", *q.BackgroundColor)
	}
	if q.TextContains != "" {
		w.add(`text LIKE ? ESCAPE '\'`, "%"+escapeLike(q.TextContains)+"%")
	}
	return s.query(ctx, s.qSelect+w.String(), w.args...)
}

func scanCommentWithPoint(r rowScanner) (model.Comment, error) {
	var (
		c      model.Comment
		pid    uuid.NullUUID
		x, y   sql.NullFloat64
		radius sql.NullFloat64
		color  sql.NullString
	)
	if err := r.Scan(
		&c.ID, &c.Text, &c.BackgroundColor, &c.PointID,
		&pid, &x, &y, &radius, &color,
	); err != nil {
		return c, err
	}
	if pid.Valid {
		c.Point = &model.Point{
			ID:     pid.UUID,
			X:      x.Float64,
			Y:      y.Float64,
			Radius: radius.Float64,
			Color:  color.String,
		}
	}
	return c, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
