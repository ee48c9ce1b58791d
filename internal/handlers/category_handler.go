package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/retocart/server/internal/apperr"
	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/services"
)

type CategoryHandler struct {
	Categories *services.CategoryService
}

// Create accepts any JSON object with a non-empty string name. Every other
// field is stored as given.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := decodeStrict(c, &body); err != nil {
		return err
	}
	if body == nil {
		return apperr.BadRequest("invalid request body: expected an object")
	}

	name, _ := body["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.BadRequest("name failed required")
	}

	fields := make(map[string]interface{}, len(body))
	for k, v := range body {
		switch {
		case k == "name":
		case models.IsCategoryKey(k):
			return apperr.BadRequest(k + " is set by the server")
		default:
			fields[k] = v
		}
	}

	ack, err := h.Categories.Create(c.UserContext(), name, fields)
	if err != nil {
		return err
	}
	return c.JSON(ack)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.Categories.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "catId")
	if err != nil {
		return err
	}
	out, err := h.Categories.CategoryProducts(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
