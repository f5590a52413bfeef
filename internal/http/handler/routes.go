package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"pointboard/internal/service"
)

// Services groups the dependencies of the HTTP routes.
// Snapshots is nil when object storage is not configured.
type Services struct {
	Points    service.PointService
	Comments  service.CommentService
	Snapshots service.SnapshotService
}

// RegisterRoutes attaches the health and /api routes to app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	points := api.Group("/points")
	points.Get("", ListPoints(svc.Points))
	points.Post("", CreatePoint(svc.Points))
	// registered before /:id so "find" is not taken for an id
	points.Get("/find", FindPoint(svc.Points))
	points.Get("/:pointId/comments", ListCommentsForPoint(svc.Comments))
	points.Get("/:id", GetPoint(svc.Points))
	points.Put("/:id", UpdatePoint(svc.Points))
	points.Delete("/:id", DeletePoint(svc.Points))

	comments := api.Group("/comments")
	comments.Get("", ListComments(svc.Comments))
	comments.Post("", CreateComment(svc.Comments))
	comments.Get("/:id", GetComment(svc.Comments))
	comments.Put("/:id", UpdateComment(svc.Comments))
	comments.Delete("/:id", DeleteComment(svc.Comments))

	if svc.Snapshots != nil {
		snapshots := api.Group("/snapshots")
		snapshots.Post("", CreateSnapshot(svc.Snapshots))
		snapshots.Get("/:id", GetSnapshot(svc.Snapshots))
	}
}
