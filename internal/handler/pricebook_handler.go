package handler

import (
	"errors"
	"strconv"

	"go-gold-catalog/internal/model"
	"go-gold-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PriceBookHandler struct {
	service service.PriceBookService
}

func NewPriceBookHandler(s service.PriceBookService) *PriceBookHandler {
	return &PriceBookHandler{service: s}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw, err := strconv.ParseUint(c.Params(name), 10, 32)
	return uint(raw), err
}

func (h *PriceBookHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(categories)
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *PriceBookHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *PriceBookHandler) RenameCategory(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RenameCategory(id, req.Name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Category renamed"})
}

func (h *PriceBookHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.service.DeleteCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete category"})
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

// GetPrices serves one category's rows from the sell or buyback table.
func (h *PriceBookHandler) GetPrices(c *fiber.Ctx) error {
	table, err := model.ParsePriceTable(c.Params("table"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown price table"})
	}

	categoryID, err := strconv.ParseUint(c.Query("category_id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "category_id is required"})
	}

	rows, err := h.service.Prices(table, uint(categoryID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(rows)
}

type replacePricesRequest struct {
	Rows []service.PriceRowInput `json:"rows"`
}

func (h *PriceBookHandler) ReplacePrices(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	table, err := model.ParsePriceTable(c.Params("table"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown price table"})
	}

	var req replacePricesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	rows, err := h.service.ReplacePrices(table, id, req.Rows)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Prices saved", "data": rows})
}
