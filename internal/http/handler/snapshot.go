package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nameapi/internal/service"
)

// CreateSnapshot godoc
// @Summary Export all names to object storage
// @Tags snapshots
// @Produce json
// @Success 201 {object} service.SnapshotResult
// @Failure 503 {object} errorPayload
// @Router /api/names/snapshots [post]
func CreateSnapshot(svc service.SnapshotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Create(c.UserContext())
		if err != nil {
			if errors.Is(err, service.ErrSnapshotsDisabled) {
				return writeError(c, fiber.StatusServiceUnavailable, "SNAPSHOTS_DISABLED", "snapshot storage is not configured")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
