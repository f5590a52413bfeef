package sqlstore

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"pointboard/internal/model"
	"pointboard/internal/repository"
)

var pointColumns = []string{"id", "x", "y", "radius", "color"}

var pointMapping = Mapping[model.Point]{
	Table:   "points",
	Columns: pointColumns,
	Values: func(p *model.Point) []any {
		color := p.Color
		if color == "" {
			color = model.DefaultPointColor
		}
		return []any{p.ID, p.X, p.Y, p.Radius, color}
	},
	Scan: func(r rowScanner) (model.Point, error) {
		var p model.Point
		err := r.Scan(&p.ID, &p.X, &p.Y, &p.Radius, &p.Color)
		return p, err
	},
	SetID: func(p *model.Point, id uuid.UUID) { p.ID = id },
}

// PointStore is the SQL implementation of repository.PointRepository.
type PointStore struct {
	*Table[model.Point]
}

// NewPointStore creates a new PointStore.
func NewPointStore(db *sql.DB) *PointStore {
	return &PointStore{Table: NewTable(db, pointMapping)}
}

var _ repository.PointRepository = (*PointStore)(nil)

// FindOne returns the only point matching q.
func (s *PointStore) FindOne(ctx context.Context, q repository.PointQuery) (*model.Point, error) {
	var w where
	if q.Color != nil {
		w.add("color = ?", *q.Color)
	}
	if q.X != nil {
		w.add("x = ?", *q.X)
	}
	if q.Y != nil {
		w.add("y = ?", *q.Y)
	}
	if q.MinRadius != nil {
		w.add("radius >= ?", *q.MinRadius)
	}

	// two rows are enough to tell "one" from "many"
	items, err := s.query(ctx, s.qSelect+w.String()+" LIMIT 2", w.args...)
	if err != nil {
		return nil, err
	}
	switch len(items) {
	case 0:
		return nil, repository.ErrNotFound
	case 1:
		return &items[0], nil
	default:
		return nil, repository.ErrMultipleResults
	}
}

// ListWithComments returns the points that own at least one comment.
func (s *PointStore) ListWithComments(ctx context.Context) ([]model.Point, error) {
	const q = `
		SELECT p.id, p.x, p.y, p.radius, p.color,
		       c.id, c.text, c.background_color, c.point_id
		FROM points p
		JOIN comments c ON c.point_id = p.id
		ORDER BY p.id
	`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]model.Point, 0)
	for rows.Next() {
		var p model.Point
		var c model.Comment
		if err := rows.Scan(
			&p.ID, &p.X, &p.Y, &p.Radius, &p.Color,
			&c.ID, &c.Text, &c.BackgroundColor, &c.PointID,
		); err != nil {
			return nil, err
		}
		if n := len(points); n > 0 && points[n-1].ID == p.ID {
			points[n-1].Comments = append(points[n-1].Comments, c)
			continue
		}
		p.Comments = []model.Comment{c}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
