package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pointboard/internal/model"
	"pointboard/internal/repository"
	"pointboard/internal/service"
)

// ListComments godoc
// @Summary List comments, optionally filtered
// @Tags comments
// @Param pointId query string false "point id"
// @Param backgroundColor query string false "exact background color"
// @Param text query string false "substring of the text"
// @Success 200 {array} commentShort
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/comments [get]
func ListComments(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := repository.CommentQuery{
			BackgroundColor: queryString(c, "backgroundColor"),
			TextContains:    c.Query("text"),
		}
		if raw := c.Query("pointId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "pointId must be a UUID")
			}
			q.PointID = &id
		}

		items, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err, "failed to list comments")
		}
		return c.JSON(mapSlice(items, toCommentShort))
	}
}

// ListCommentsForPoint godoc
// @Summary List the comments of a point
// @Tags comments
// @Param pointId path string true "point id"
// @Success 200 {array} commentShort
// @Failure 404 {object} errorPayload
// @Router /api/points/{pointId}/comments [get]
func ListCommentsForPoint(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pointID, ok := pathID(c, "pointId")
		if !ok {
			return notFound(c)
		}
		items, err := svc.ListForPoint(c.UserContext(), pointID)
		if err != nil {
			return writeServiceError(c, err, "failed to list comments")
		}
		return c.JSON(mapSlice(items, toCommentShort))
	}
}

// GetComment godoc
// @Summary Get a comment with its point
// @Tags comments
// @Param id path string true "comment id"
// @Success 200 {object} commentFull
// @Failure 404 {object} errorPayload
// @Router /api/comments/{id} [get]
func GetComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return notFound(c)
		}
		cm, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "failed to get comment")
		}
		return c.JSON(toCommentFull(*cm))
	}
}

// CreateComment godoc
// @Summary Create a comment
// @Tags comments
// @Accept json
// @Param comment body model.CommentInput true "comment"
// @Success 201 {object} commentShort
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/comments [post]
func CreateComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.CommentInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}

		cm, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err, "failed to create comment")
		}
		c.Location("/api/comments/" + cm.ID.String())
		return c.Status(fiber.StatusCreated).JSON(toCommentShort(*cm))
	}
}

// UpdateComment godoc
// @Summary Replace a comment's fields
// @Tags comments
// @Accept json
// @Param id path string true "comment id"
// @Param comment body model.CommentInput true "comment"
// @Success 200 {object} commentFull
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/comments/{id} [put]
func UpdateComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return notFound(c)
		}
		var in model.CommentInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}

		cm, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err, "failed to update comment")
		}
		return c.JSON(toCommentFull(*cm))
	}
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags comments
// @Param id path string true "comment id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/comments/{id} [delete]
func DeleteComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return notFound(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, "failed to delete comment")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
