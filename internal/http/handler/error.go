package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pointboard/internal/http/middleware"
	"pointboard/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Detail  string              `json:"detail,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// writeError writes a standardized JSON error response.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeEnvelope(c, status, errorEnvelope{Code: code, Message: message})
}

func writeEnvelope(c *fiber.Ctx, status int, env errorEnvelope) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error:     env,
	})
}

// writeServiceError maps service errors onto HTTP responses. title names the
// failed operation in 500 responses, e.g. "failed to create point".
func writeServiceError(c *fiber.Ctx, err error, title string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeEnvelope(c, fiber.StatusBadRequest, errorEnvelope{
			Code:    "VALIDATION_FAILED",
			Message: "one or more validation errors occurred",
			Fields:  verr.Fields,
		})
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrMultipleResults):
		return writeError(c, fiber.StatusConflict, "MULTIPLE_RESULTS", "more than one resource matches")
	}

	c.Locals(middleware.ErrorLocalKey, err)
	if errors.Is(err, service.ErrInconsistentState) {
		return writeEnvelope(c, fiber.StatusInternalServerError, errorEnvelope{
			Code:    "INCONSISTENT_STATE",
			Message: "inconsistent state",
			Detail:  err.Error(),
		})
	}
	return writeEnvelope(c, fiber.StatusInternalServerError, errorEnvelope{
		Code:    "INTERNAL_ERROR",
		Message: title,
		Detail:  err.Error(),
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "BODY_TOO_LARGE", "request body too large")
		default:
			c.Locals(middleware.ErrorLocalKey, err)
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
