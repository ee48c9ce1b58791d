package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/retocart/server/internal/apperr"
	"github.com/retocart/server/internal/services"
)

type ImageHandler struct {
	Images *services.ImageService
}

// Upload stores the multipart "image" field and returns its public URL.
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return apperr.BadRequest("image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperr.BadRequest("failed to open image")
	}
	defer file.Close()

	url, err := h.Images.Upload(c.UserContext(), fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), file, fileHeader.Size)
	switch {
	case errors.Is(err, services.ErrImageStorageDisabled):
		return apperr.ErrStorageDisabled
	case errors.Is(err, services.ErrNotAnImage):
		return apperr.BadRequest("file is not an image")
	case err != nil:
		return err
	}
	return c.JSON(fiber.Map{"imgUrl": url})
}
