package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"nameapi/internal/service"
)

// nameRequest is the body accepted by create and replace.
type nameRequest struct {
	Name     string `json:"name" form:"name"`
	LastName string `json:"last_name" form:"last_name"`
}

// parseID reads a positive integer path parameter. Anything else cannot name a record.
func parseID(c *fiber.Ctx, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListNames godoc
// @Summary List names
// @Tags names
// @Produce json
// @Success 200 {array} model.Name
// @Router /api/names/ [get]
func ListNames(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// CreateName godoc
// @Summary Create a name
// @Tags names
// @Accept json
// @Produce json
// @Param body body nameRequest true "Name"
// @Success 201 {object} model.Name
// @Failure 400 {object} errorPayload
// @Router /api/names/ [post]
func CreateName(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req nameRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}

		n, err := svc.Create(c.UserContext(), service.NameInput{Name: req.Name, LastName: req.LastName})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(n)
	}
}

// GetName godoc
// @Summary Retrieve a name
// @Tags names
// @Produce json
// @Param id path int true "Name ID"
// @Success 200 {object} model.Name
// @Failure 404 {object} errorPayload
// @Router /api/names/{id}/ [get]
func GetName(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeServiceError(c, service.ErrNotFound)
		}

		n, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(n)
	}
}

// UpdateName godoc
// @Summary Replace a name
// @Tags names
// @Accept json
// @Produce json
// @Param id path int true "Name ID"
// @Param body body nameRequest true "Name"
// @Success 200 {object} model.Name
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/names/{id}/ [put]
func UpdateName(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeServiceError(c, service.ErrNotFound)
		}

		var req nameRequest
		if err := c.BodyParser(&req); err != nil {
			// an unknown record is reported before a broken body
			if _, getErr := svc.Get(c.UserContext(), id); getErr != nil {
				return writeServiceError(c, getErr)
			}
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}

		n, err := svc.Update(c.UserContext(), id, service.NameInput{Name: req.Name, LastName: req.LastName})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(n)
	}
}

// DeleteName godoc
// @Summary Delete a name
// @Tags names
// @Param id path int true "Name ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/names/{id}/ [delete]
func DeleteName(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeServiceError(c, service.ErrNotFound)
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
