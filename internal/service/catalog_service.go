package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go-gold-catalog/internal/catalog"
	"go-gold-catalog/internal/model"
	"go-gold-catalog/internal/repository"
	"go-gold-catalog/internal/ws"
	"go-gold-catalog/pkg/validator"
)

// ProductRequest carries the writable product fields. IsActive is explicit
// so an admin can park a product without deleting it.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight" validate:"gt=0"`
	Price       int64   `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
	IsActive    bool    `json:"is_active"`
	CategoryID  *uint   `json:"category_id"`
}

type CatalogService interface {
	PublicProducts(filter catalog.Filter) ([]model.Product, error)
	AllProducts() ([]model.Product, error)
	CreateProduct(req *ProductRequest) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *ProductRequest) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
}

type catalogService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, hub *ws.Hub) CatalogService {
	return &catalogService{productRepo: pRepo, wsHub: hub}
}

// PublicProducts serves the storefront: newest first, inactive hidden,
// narrowed by the caller's category/weight selection.
func (s *catalogService) PublicProducts(filter catalog.Filter) ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	filtered := catalog.FilterProducts(products, filter)
	catalog.SortProductsNewestFirst(filtered)
	return filtered, nil
}

func (s *catalogService) AllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) CreateProduct(req *ProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Weight:      req.Weight,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
		CategoryID:  req.CategoryID,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.wsHub.Emit("product_updated", map[string]interface{}{
		"action": "created",
		"id":     product.ID,
	})

	return product, nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *ProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Weight = req.Weight
	existing.Price = req.Price
	existing.ImageURL = req.ImageURL
	existing.IsActive = req.IsActive
	existing.CategoryID = req.CategoryID
	existing.Category = nil

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Emit("product_updated", map[string]interface{}{
		"action": "updated",
		"id":     existing.ID,
	})

	return existing, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.wsHub.Emit("product_updated", map[string]interface{}{
		"action": "deleted",
		"id":     id,
	})
	return nil
}
