package service

import (
	"go-gold-catalog/internal/catalog"
	"go-gold-catalog/internal/model"
	"go-gold-catalog/internal/pricing"
	"go-gold-catalog/internal/repository"
)

// DashboardStats is the admin landing snapshot: catalog and moderation
// counts plus the 1 gram reference prices of the newest category.
type DashboardStats struct {
	Products        int   `json:"products"`
	ActiveProducts  int   `json:"active_products"`
	PendingReviews  int   `json:"pending_reviews"`
	ApprovedReviews int   `json:"approved_reviews"`
	SellPerGram     int64 `json:"sell_per_gram"`
	BuybackPerGram  int64 `json:"buyback_per_gram"`
}

type DashboardService interface {
	Stats() (*DashboardStats, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
	priceRepo    repository.PriceRepository
	categoryRepo repository.CategoryRepository
}

func NewDashboardService(
	pRepo repository.ProductRepository,
	rRepo repository.ReviewRepository,
	priceRepo repository.PriceRepository,
	cRepo repository.CategoryRepository,
) DashboardService {
	return &dashboardService{
		productRepo:  pRepo,
		reviewRepo:   rRepo,
		priceRepo:    priceRepo,
		categoryRepo: cRepo,
	}
}

func (s *dashboardService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	stats.Products = len(products)
	for _, p := range products {
		if p.IsActive {
			stats.ActiveProducts++
		}
	}

	reviews, err := s.reviewRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, r := range reviews {
		if r.IsApproved {
			stats.ApprovedReviews++
		} else {
			stats.PendingReviews++
		}
	}

	// Reference prices: the 1g row of the newest category, when present.
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		catalog.SortCategoriesByName(categories)
		newest := categories[0]
		stats.SellPerGram = oneGramPrice(s.priceRepo, model.TableSell, newest.ID)
		stats.BuybackPerGram = oneGramPrice(s.priceRepo, model.TableBuyback, newest.ID)
	}

	return stats, nil
}

func oneGramPrice(repo repository.PriceRepository, table model.PriceTable, categoryID uint) int64 {
	rows, err := repo.FindByCategory(table, categoryID)
	if err != nil {
		return 0
	}
	master := pricing.BuildMasterTable(rows)
	return master[pricing.Key{CategoryID: categoryID, Weight: 1}]
}
