package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pointboard/internal/config"
	"pointboard/internal/database"
	"pointboard/internal/database/schema"
	"pointboard/internal/http/middleware"
	"pointboard/internal/repository/sqlstore"
	"pointboard/internal/service"
	"pointboard/internal/validation"
)

// newBoard wires the real stack on a private in-memory SQLite database.
func newBoard(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, SQLiteName: "board-" + uuid.NewString()})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, schema.Ensure(context.Background(), db, config.DriverSQLite, zap.NewNop()))

	points := sqlstore.NewPointStore(db)
	comments := sqlstore.NewCommentStore(db)
	v := validation.New()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, db, Services{
		Points:   service.NewPointService(points, comments, v),
		Comments: service.NewCommentService(comments, v),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = jsonRequest(method, target, body)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestScenario_EmptyBoard(t *testing.T) {
	app := newBoard(t)

	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, "/api/points", "").StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, "/api/comments", "").StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodDelete, "/api/points/"+uuid.NewString(), "").StatusCode)
	assert.Equal(t, http.StatusNotFound,
		do(t, app, http.MethodPut, "/api/points/"+uuid.NewString(), `{"x":1,"y":1,"radius":1,"color":"#000000"}`).StatusCode)
}

func TestScenario_PointLifecycle(t *testing.T) {
	app := newBoard(t)

	resp := do(t, app, http.MethodPost, "/api/points", `{"x":10,"y":20,"radius":5,"color":"#112233"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeInto[pointShort](t, resp)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, pointShort{ID: created.ID, X: 10, Y: 20, Radius: 5, Color: "#112233"}, created)
	location := resp.Header.Get(fiber.HeaderLocation)
	assert.Equal(t, "/api/points/"+created.ID.String(), location)

	resp = do(t, app, http.MethodGet, location, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decodeInto[pointShort](t, resp))

	resp = do(t, app, http.MethodPut, location, `{"x":10,"y":20,"radius":0,"color":"#112233"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeInto[errorPayload](t, resp)
	assert.Equal(t, []string{"Radius"}, keysOf(body.Error.Fields))

	resp = do(t, app, http.MethodPut, location, `{"x":-1,"y":-2,"radius":7.5,"color":"#abcdef"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pointShort{ID: created.ID, X: -1, Y: -2, Radius: 7.5, Color: "#abcdef"}, decodeInto[pointShort](t, resp))

	resp = do(t, app, http.MethodGet, "/api/points/find?color=%23abcdef", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, decodeInto[pointShort](t, resp).ID)

	assert.Equal(t, http.StatusNoContent, do(t, app, http.MethodDelete, location, "").StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, location, "").StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodDelete, location, "").StatusCode)
}

func TestScenario_Comments(t *testing.T) {
	app := newBoard(t)

	resp := do(t, app, http.MethodPost, "/api/points", `{"x":1,"y":2,"radius":3,"color":"#000000"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	point := decodeInto[pointShort](t, resp)

	resp = do(t, app, http.MethodPost, "/api/comments",
		fmt.Sprintf(`{"pointId":%q,"text":"first","backgroundColor":"#FFFFFF"}`, point.ID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	comment := decodeInto[commentShort](t, resp)

	resp = do(t, app, http.MethodGet, "/api/points/"+point.ID.String()+"/comments", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []commentShort{comment}, decodeInto[[]commentShort](t, resp))

	resp = do(t, app, http.MethodGet, "/api/comments/"+comment.ID.String(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	full := decodeInto[commentFull](t, resp)
	require.NotNil(t, full.Point)
	assert.Equal(t, point, *full.Point)

	resp = do(t, app, http.MethodGet, "/api/points/"+point.ID.String()+"?expand=comments", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeInto[pointFull](t, resp).Comments, 1)

	resp = do(t, app, http.MethodGet, "/api/points?withComments=true", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeInto[[]pointFull](t, resp), 1)

	resp = do(t, app, http.MethodGet, "/api/comments?text=irs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeInto[[]commentShort](t, resp), 1)

	resp = do(t, app, http.MethodPost, "/api/comments",
		fmt.Sprintf(`{"pointId":%q,"text":"   ","backgroundColor":"#FFFFFF"}`, point.ID))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeInto[errorPayload](t, resp).Error.Fields, "Text")

	// deleting the point keeps its comment, which then has no parent view
	require.Equal(t, http.StatusNoContent, do(t, app, http.MethodDelete, "/api/points/"+point.ID.String(), "").StatusCode)
	resp = do(t, app, http.MethodGet, "/api/comments/"+comment.ID.String(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, decodeInto[commentFull](t, resp).Point)

	assert.Equal(t, http.StatusNoContent, do(t, app, http.MethodDelete, "/api/comments/"+comment.ID.String(), "").StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, "/api/points/"+point.ID.String()+"/comments", "").StatusCode)
}

func TestScenario_SnapshotsDisabled(t *testing.T) {
	app := newBoard(t)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodPost, "/api/snapshots", "").StatusCode)
}

func keysOf(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
