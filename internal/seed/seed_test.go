package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pointboard/internal/model"
	repoMocks "pointboard/internal/repository/mocks"
	"pointboard/internal/service"
	"pointboard/internal/validation"
)

const board = `
points:
  - id: 7d4f3c1e-2a4b-4c6d-8e9f-0a1b2c3d4e5f
    x: 10
    y: 20
    radius: 5
    color: "#112233"
    comments:
      - text: first
        backgroundColor: "#FFFFFF"
      - id: 0f1e2d3c-4b5a-4978-8695-a4b3c2d1e0f9
        text: second
        backgroundColor: "#EEEEEE"
  - x: 1
    y: 1
    radius: 1
    color: "#ABCDEF"
`

func newLoader() (*Loader, *repoMocks.MockPointRepository, *repoMocks.MockCommentRepository) {
	points := new(repoMocks.MockPointRepository)
	comments := new(repoMocks.MockCommentRepository)
	return NewLoader(points, comments, validation.New(), zap.NewNop()), points, comments
}

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(board))
	require.NoError(t, err)
	require.Len(t, f.Points, 2)
	assert.Equal(t, "#112233", f.Points[0].Color)
	assert.Len(t, f.Points[0].Comments, 2)
	assert.Empty(t, f.Points[1].ID)

	empty, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Points)

	_, err = Decode(strings.NewReader("points:\n  - colour: red\n"))
	assert.ErrorContains(t, err, "decode seed")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(board), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Points, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open seed file")
}

func TestLoader_Apply(t *testing.T) {
	ctx := context.Background()
	parent := uuid.MustParse("7d4f3c1e-2a4b-4c6d-8e9f-0a1b2c3d4e5f")

	t.Run("inserts points then comments", func(t *testing.T) {
		l, points, comments := newLoader()
		f, err := Decode(strings.NewReader(board))
		require.NoError(t, err)

		points.On("CreateMany", ctx, mock.MatchedBy(func(ps []model.Point) bool {
			return len(ps) == 2 && ps[0].ID == parent && ps[1].ID != uuid.Nil
		})).Return(nil).Once()
		comments.On("CreateMany", ctx, mock.MatchedBy(func(cs []model.Comment) bool {
			return len(cs) == 2 &&
				cs[0].PointID == parent && cs[0].ID != uuid.Nil &&
				cs[1].ID == uuid.MustParse("0f1e2d3c-4b5a-4978-8695-a4b3c2d1e0f9")
		})).Return(nil).Once()

		require.NoError(t, l.Apply(ctx, f))
		points.AssertExpectations(t)
		comments.AssertExpectations(t)
	})

	t.Run("invalid entry writes nothing", func(t *testing.T) {
		l, points, comments := newLoader()
		f := &File{Points: []Point{
			{X: 1, Y: 1, Radius: 1, Color: "#000000"},
			{X: 1, Y: 1, Radius: 0, Color: "#000000"},
		}}

		err := l.Apply(ctx, f)
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, err.Error(), "points[1]")
		assert.Contains(t, verr.Fields, "Radius")
		points.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
		comments.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("blank comment text", func(t *testing.T) {
		l, _, _ := newLoader()
		f := &File{Points: []Point{{Radius: 1, Color: "#000000", Comments: []Comment{{Text: " ", BackgroundColor: "#FFFFFF"}}}}}

		err := l.Apply(ctx, f)
		assert.ErrorContains(t, err, "points[0].comments[0]")
	})

	t.Run("bad id", func(t *testing.T) {
		l, _, _ := newLoader()
		err := l.Apply(ctx, &File{Points: []Point{{ID: "nope", Radius: 1, Color: "#000000"}}})
		assert.ErrorContains(t, err, `invalid id "nope"`)
	})

	t.Run("store failure", func(t *testing.T) {
		l, points, comments := newLoader()
		points.On("CreateMany", ctx, mock.Anything).Return(errors.New("tx aborted"))

		err := l.Apply(ctx, &File{Points: []Point{{Radius: 1, Color: "#000000"}}})
		assert.EqualError(t, err, "seed points: tx aborted")
		comments.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("empty document", func(t *testing.T) {
		l, points, _ := newLoader()
		require.NoError(t, l.Apply(ctx, &File{}))
		points.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})
}
