package service

import (
	"errors"
	"strings"
	"time"

	"go-gold-catalog/internal/catalog"
	"go-gold-catalog/internal/model"
	"go-gold-catalog/internal/pricing"
	"go-gold-catalog/internal/repository"
	"go-gold-catalog/internal/ws"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
)

// PriceRowInput is one weight/price pair from the price editor. Price comes
// in as already-parsed whole Rupiah; a value of 0 or less means "unset".
type PriceRowInput struct {
	Weight float64 `json:"weight"`
	Price  int64   `json:"price"`
}

type PriceBookService interface {
	Categories() ([]model.GoldCategory, error)
	CreateCategory(name string) (*model.GoldCategory, error)
	RenameCategory(id uint, name string) error
	DeleteCategory(id uint) error
	Prices(table model.PriceTable, categoryID uint) ([]model.WeightPrice, error)
	ReplacePrices(table model.PriceTable, categoryID uint, rows []PriceRowInput) ([]model.WeightPrice, error)
}

type priceBookService struct {
	categoryRepo repository.CategoryRepository
	priceRepo    repository.PriceRepository
	wsHub        *ws.Hub
}

func NewPriceBookService(cRepo repository.CategoryRepository, pRepo repository.PriceRepository, hub *ws.Hub) PriceBookService {
	return &priceBookService{
		categoryRepo: cRepo,
		priceRepo:    pRepo,
		wsHub:        hub,
	}
}

// Categories returns all categories ordered for selectors: name descending
// with numeric awareness, so the newest year label leads.
func (s *priceBookService) Categories() ([]model.GoldCategory, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	catalog.SortCategoriesByName(categories)
	return categories, nil
}

func (s *priceBookService) CreateCategory(name string) (*model.GoldCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	category := &model.GoldCategory{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// RenameCategory changes the label only; attached price rows stay untouched.
func (s *priceBookService) RenameCategory(id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCategoryNameRequired
	}
	return s.categoryRepo.Rename(id, name)
}

func (s *priceBookService) DeleteCategory(id uint) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.wsHub.Emit("prices_updated", map[string]interface{}{"category_id": id})
	return nil
}

func (s *priceBookService) Prices(table model.PriceTable, categoryID uint) ([]model.WeightPrice, error) {
	return s.priceRepo.FindByCategory(table, categoryID)
}

// ReplacePrices saves a category's table by full replacement. Rows priced at
// zero or on an unsupported weight are dropped, not stored: a weight the
// admin cleared since the last save disappears from the table.
func (s *priceBookService) ReplacePrices(table model.PriceTable, categoryID uint, rows []PriceRowInput) ([]model.WeightPrice, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	keep := make([]model.WeightPrice, 0, len(rows))
	for _, row := range rows {
		if row.Price <= 0 || !pricing.IsSupportedWeight(row.Weight) {
			continue
		}
		keep = append(keep, model.WeightPrice{
			CategoryID: categoryID,
			Weight:     row.Weight,
			Price:      row.Price,
			UpdatedAt:  now,
		})
	}

	if err := s.priceRepo.Replace(table, categoryID, keep); err != nil {
		return nil, err
	}

	s.wsHub.Emit("prices_updated", map[string]interface{}{
		"category_id": categoryID,
		"table":       string(table),
	})

	return s.priceRepo.FindByCategory(table, categoryID)
}
