// Package seed loads an initial board from a YAML document at startup.
//
// The document lists points with their comments nested underneath:
//
//	points:
//	  - id: 5b0b9a4e-...   # optional
//	    x: 10
//	    y: 20
//	    radius: 5
//	    color: "#112233"
//	    comments:
//	      - text: hello
//	        backgroundColor: "#FFFFFF"
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"pointboard/internal/model"
	"pointboard/internal/repository"
	"pointboard/internal/service"
	"pointboard/internal/validation"
)

// File is the decoded seed document.
type File struct {
	Points []Point `yaml:"points"`
}

type Point struct {
	ID       string    `yaml:"id"`
	X        float64   `yaml:"x"`
	Y        float64   `yaml:"y"`
	Radius   float64   `yaml:"radius"`
	Color    string    `yaml:"color"`
	Comments []Comment `yaml:"comments"`
}

type Comment struct {
	ID              string `yaml:"id"`
	Text            string `yaml:"text"`
	BackgroundColor string `yaml:"backgroundColor"`
}

// Decode reads a seed document from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &f, nil
}

// LoadFile opens path and decodes it.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Loader validates seed entries and bulk inserts them.
type Loader struct {
	points   repository.PointRepository
	comments repository.CommentRepository
	validate *validation.Validator
	log      *zap.Logger
}

func NewLoader(points repository.PointRepository, comments repository.CommentRepository, v *validation.Validator, log *zap.Logger) *Loader {
	return &Loader{points: points, comments: comments, validate: v, log: log}
}

// Apply validates every entry of f before writing anything, then inserts the
// points and the comments in two transactions.
func (l *Loader) Apply(ctx context.Context, f *File) error {
	points, comments, err := l.build(f)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		l.log.Info("seed file has no points")
		return nil
	}

	if err := l.points.CreateMany(ctx, points); err != nil {
		return fmt.Errorf("seed points: %w", err)
	}
	if len(comments) > 0 {
		if err := l.comments.CreateMany(ctx, comments); err != nil {
			return fmt.Errorf("seed comments: %w", err)
		}
	}

	l.log.Info("seed applied", zap.Int("points", len(points)), zap.Int("comments", len(comments)))
	return nil
}

func (l *Loader) build(f *File) ([]model.Point, []model.Comment, error) {
	points := make([]model.Point, 0, len(f.Points))
	var comments []model.Comment

	for i, sp := range f.Points {
		id, err := parseID(sp.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("points[%d]: %w", i, err)
		}
		in := model.PointInput{X: sp.X, Y: sp.Y, Radius: sp.Radius, Color: sp.Color}
		if res := l.validate.Validate(in); !res.Valid() {
			return nil, nil, fmt.Errorf("points[%d]: %w", i, &service.ValidationError{Fields: res.Errors})
		}
		p := model.Point{ID: id}
		in.Apply(&p)
		points = append(points, p)

		for j, sc := range sp.Comments {
			cid, err := parseID(sc.ID)
			if err != nil {
				return nil, nil, fmt.Errorf("points[%d].comments[%d]: %w", i, j, err)
			}
			cin := model.CommentInput{PointID: id, Text: sc.Text, BackgroundColor: sc.BackgroundColor}
			if res := l.validate.Validate(cin); !res.Valid() {
				return nil, nil, fmt.Errorf("points[%d].comments[%d]: %w", i, j, &service.ValidationError{Fields: res.Errors})
			}
			c := model.Comment{ID: cid}
			cin.Apply(&c)
			comments = append(comments, c)
		}
	}
	return points, comments, nil
}

// parseID returns a fresh id for an empty string.
func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}
