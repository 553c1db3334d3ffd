package handler

import (
	"errors"
	"strconv"

	"go-gold-catalog/internal/catalog"
	"go-gold-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	syncService    service.PriceSyncService
}

func NewCatalogHandler(cs service.CatalogService, ss service.PriceSyncService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs, syncService: ss}
}

// GetPublicProducts serves the storefront catalog. Missing query params are
// "all" sentinels; inactive products are never returned.
func (h *CatalogHandler) GetPublicProducts(c *fiber.Ctx) error {
	var filter catalog.Filter

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid category_id"})
		}
		v := uint(id)
		filter.CategoryID = &v
	}

	if raw := c.Query("weight"); raw != "" {
		w, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid weight"})
		}
		filter.Weight = &w
	}

	products, err := h.catalogService.PublicProducts(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.AllProducts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.catalogService.UpdateProduct(id, &req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.catalogService.DeleteProduct(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete product"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// GetPricingReport resolves every product against the current sell master
// table so the admin list can highlight drifted prices.
func (h *CatalogHandler) GetPricingReport(c *fiber.Ctx) error {
	report, err := h.syncService.PricingReport()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(report)
}

type syncRequest struct {
	Price int64 `json:"price"`
}

func (h *CatalogHandler) SyncProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req syncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.syncService.SyncProduct(id, req.Price); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Product price synced"})
}

// BulkSync reconciles all drifted products. Partial failure still returns the
// report; the aggregate error message rides along for the notice banner.
func (h *CatalogHandler) BulkSync(c *fiber.Ctx) error {
	report, err := h.syncService.BulkSync()
	if err != nil {
		if report != nil {
			return c.Status(207).JSON(fiber.Map{"error": err.Error(), "data": report})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Bulk sync complete", "data": report})
}
