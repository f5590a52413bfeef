package handler

import (
	"github.com/gofiber/fiber/v2"

	"pointboard/internal/model"
	"pointboard/internal/repository"
	"pointboard/internal/service"
)

// ListPoints godoc
// @Summary List points
// @Tags points
// @Param withComments query bool false "only points that have comments, with comments embedded"
// @Success 200 {array} pointShort
// @Failure 404 {object} errorPayload
// @Router /api/points [get]
func ListPoints(svc service.PointService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.QueryBool("withComments") {
			items, err := svc.ListWithComments(c.UserContext())
			if err != nil {
				return writeServiceError(c, err, "failed to list points")
			}
			return c.JSON(mapSlice(items, toPointFull))
		}

		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "failed to list points")
		}
		return c.JSON(mapSlice(items, toPointShort))
	}
}

// FindPoint godoc
// @Summary Find the single point matching the given attributes
// @Tags points
// @Param color query string false "exact color, e.g. #112233"
// @Param x query number false "exact x"
// @Param y query number false "exact y"
// @Param minRadius query number false "minimum radius"
// @Success 200 {object} pointShort
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/points/find [get]
func FindPoint(svc service.PointService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := repository.PointQuery{Color: queryString(c, "color")}
		var err error
		if q.X, err = queryFloat(c, "x"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "x must be a number")
		}
		if q.Y, err = queryFloat(c, "y"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "y must be a number")
		}
		if q.MinRadius, err = queryFloat(c, "minRadius"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "minRadius must be a number")
		}

		p, err := svc.Find(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err, "failed to find point")
		}
		return c.JSON(toPointShort(*p))
	}
}

// GetPoint godoc
// @Summary Get a point
// @Tags points
// @Param id path string true "point id"
// @Param expand query string false "set to comments to embed the point's comments"
// @Success 200 {object} pointShort
// @Failure 404 {object} errorPayload
// @Router /api/points/{id} [get]
func GetPoint(svc service.PointService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return notFound(c)
		}

		if c.Query("expand") == "comments" {
			p, err := svc.GetWithComments(c.UserContext(), id)
			if err != nil {
				return writeServiceError(c, err, "failed to get point")
			}
			return c.JSON(toPointFull(*p))
		}

		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "failed to get point")
		}
		return c.JSON(toPointShort(*p))
	}
}

// CreatePoint godoc
// @Summary Create a point
// @Tags points
// @Accept json
// @Param point body model.PointInput true "point"
// @Success 201 {object} pointShort
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/points [post]
func CreatePoint(svc service.PointService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.PointInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}

		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err, "failed to create point")
		}
		c.Location("/api/points/" + p.ID.String())
		return c.Status(fiber.StatusCreated).JSON(toPointShort(*p))
	}
}

// UpdatePoint godoc
// @Summary Replace a point's fields
// @Tags points
// @Accept json
// @Param id path string true "point id"
// @Param point body model.PointInput true "point"
// @Success 200 {object} pointShort
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/points/{id} [put]
func UpdatePoint(svc service.PointService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return notFound(c)
		}
		var in model.PointInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}

		p, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err, "failed to update point")
		}
		return c.JSON(toPointShort(*p))
	}
}

// DeletePoint godoc
// @Summary Delete a point
// @Description Comments of the point are kept.
// @Tags points
// @Param id path string true "point id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/points/{id} [delete]
func DeletePoint(svc service.PointService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return notFound(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, "failed to delete point")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
