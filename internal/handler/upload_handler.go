package handler

import (
	"errors"

	"go-gold-catalog/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	store *storage.LocalStore
}

func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadImage stores a product image and returns its public URL.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing image file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unable to read image file"})
	}
	defer file.Close()

	url, err := h.store.Save(file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			return c.Status(400).JSON(fiber.Map{"error": "Unsupported image type (use jpg, png or webp)"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store image"})
	}

	return c.Status(201).JSON(fiber.Map{"url": url})
}
