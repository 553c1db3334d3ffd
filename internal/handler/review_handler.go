package handler

import (
	"errors"

	"go-gold-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// Submit takes a public review; it always lands in the pending state.
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	var req service.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	review, err := h.service.Submit(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Review submitted, awaiting approval", "data": review})
}

func (h *ReviewHandler) GetApproved(c *fiber.Ctx) error {
	reviews, err := h.service.ApprovedReviews()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) GetModeration(c *fiber.Ctx) error {
	list, err := h.service.Moderation()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(list)
}

func (h *ReviewHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
	}

	if err := h.service.Approve(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to approve review"})
	}
	return c.JSON(fiber.Map{"message": "Review approved"})
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete review"})
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}
