package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors for every route except the OAuth callback,
// which always redirects.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code

		return c.Status(status).JSON(fiber.Map{
			"status": status,
			"errMsg": fiberErr.Message,
		})
	}

	slog.Error("HTTP API error", "err", err, "path", c.Path())

	return c.Status(status).JSON(fiber.Map{
		"status": status,
		"errMsg": "something went wrong",
	})
}
