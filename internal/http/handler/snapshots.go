package handler

import (
	"github.com/gofiber/fiber/v2"

	"pointboard/internal/service"
)

// CreateSnapshot godoc
// @Summary Export the board to object storage
// @Tags snapshots
// @Success 201 {object} snapshotResponse
// @Failure 500 {object} errorPayload
// @Router /api/snapshots [post]
func CreateSnapshot(svc service.SnapshotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Take(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "failed to take snapshot")
		}
		return c.Status(fiber.StatusCreated).JSON(snapshotResponse{
			Key:      res.Key,
			URL:      res.URL,
			Points:   res.Points,
			Comments: res.Comments,
		})
	}
}

// GetSnapshot godoc
// @Summary Download a snapshot
// @Tags snapshots
// @Produce json
// @Param id path string true "snapshot id"
// @Success 200
// @Failure 404 {object} errorPayload
// @Router /api/snapshots/{id} [get]
func GetSnapshot(svc service.SnapshotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return notFound(c)
		}
		rc, info, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "failed to fetch snapshot")
		}

		contentType := info.ContentType
		if contentType == "" {
			contentType = fiber.MIMEApplicationJSON
		}
		c.Set(fiber.HeaderContentType, contentType)
		// the response body stream closes rc once written
		return c.SendStream(rc, int(info.Size))
	}
}
