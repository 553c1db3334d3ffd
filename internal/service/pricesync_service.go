package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"go-gold-catalog/internal/model"
	"go-gold-catalog/internal/pricing"
	"go-gold-catalog/internal/repository"
	"go-gold-catalog/internal/ws"
)

// syncWorkers caps the fan-out of concurrent price updates. Unbounded
// parallelism would hammer the store once the catalog grows; a proper
// queue is the next step if the catalog outscales this.
const syncWorkers = 8

// ProductPricing pairs a product with its resolution against the current
// sell master table.
type ProductPricing struct {
	Product    model.Product      `json:"product"`
	Resolution pricing.Resolution `json:"resolution"`
}

// SyncReport summarizes a bulk reconciliation run. Per-item failures are not
// surfaced individually; the caller gets the aggregate count and one error.
type SyncReport struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
}

type PriceSyncService interface {
	PricingReport() ([]ProductPricing, error)
	SyncProduct(id uuid.UUID, newPrice int64) error
	BulkSync() (*SyncReport, error)
}

type priceSyncService struct {
	productRepo repository.ProductRepository
	priceRepo   repository.PriceRepository
	wsHub       *ws.Hub
}

func NewPriceSyncService(pRepo repository.ProductRepository, priceRepo repository.PriceRepository, hub *ws.Hub) PriceSyncService {
	return &priceSyncService{
		productRepo: pRepo,
		priceRepo:   priceRepo,
		wsHub:       hub,
	}
}

// loadSnapshot re-fetches products and the sell master table. Nothing is
// cached between calls; every run works from ground truth.
func (s *priceSyncService) loadSnapshot() ([]model.Product, pricing.MasterTable, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}
	sellRows, err := s.priceRepo.FindAll(model.TableSell)
	if err != nil {
		return nil, nil, err
	}
	return products, pricing.BuildMasterTable(sellRows), nil
}

// PricingReport resolves every product so the admin UI can show live price,
// per-gram price and drift flags next to the stored snapshot.
func (s *priceSyncService) PricingReport() ([]ProductPricing, error) {
	products, table, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}

	report := make([]ProductPricing, len(products))
	for i, p := range products {
		report[i] = ProductPricing{Product: p, Resolution: pricing.Resolve(p, table)}
	}
	return report, nil
}

// SyncProduct persists one corrected price. One update, no retry; on failure
// the product simply stays unsynced.
func (s *priceSyncService) SyncProduct(id uuid.UUID, newPrice int64) error {
	if newPrice < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if err := s.productRepo.UpdatePrice(id, newPrice); err != nil {
		return err
	}
	s.wsHub.Emit("product_updated", map[string]interface{}{
		"action": "price_synced",
		"id":     id,
	})
	return nil
}

// BulkSync reconciles every drifted product against the master table. Updates
// run concurrently and independently: one failure never aborts the rest. When
// nothing drifted the run is a no-op, so back-to-back invocations with an
// unchanged master table perform zero updates the second time.
func (s *priceSyncService) BulkSync() (*SyncReport, error) {
	products, table, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}

	type task struct {
		id    uuid.UUID
		price int64
	}
	var drifted []task
	for _, p := range products {
		res := pricing.Resolve(p, table)
		if res.OutOfSync {
			drifted = append(drifted, task{id: p.ID, price: res.LivePrice})
		}
	}

	report := &SyncReport{Attempted: len(drifted)}
	if len(drifted) == 0 {
		return report, nil
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	sem := make(chan struct{}, syncWorkers)

	for _, t := range drifted {
		wg.Add(1)
		sem <- struct{}{}
		go func(t task) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.productRepo.UpdatePrice(t.id, t.price); err != nil {
				log.Printf("bulk sync: update %s failed: %v", t.id, err)
				return
			}
			mu.Lock()
			succeeded++
			mu.Unlock()
		}(t)
	}
	wg.Wait()

	report.Succeeded = succeeded

	s.wsHub.Emit("prices_updated", map[string]interface{}{
		"action":    "bulk_sync",
		"attempted": report.Attempted,
		"succeeded": report.Succeeded,
	})

	if report.Succeeded < report.Attempted {
		return report, fmt.Errorf("bulk sync: %d of %d updates failed", report.Attempted-report.Succeeded, report.Attempted)
	}
	return report, nil
}
