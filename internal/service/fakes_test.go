package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-gold-catalog/internal/model"
	"go-gold-catalog/internal/ws"
)

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

// fakeProductRepo is an in-memory ProductRepository. UpdatePrice is safe for
// concurrent use because bulk sync fans out.
type fakeProductRepo struct {
	mu          sync.Mutex
	products    []model.Product
	updateCalls int
	failIDs     map[uuid.UUID]bool
}

func (f *fakeProductRepo) Create(product *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) FindAll() ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) Update(product *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == product.ID {
			f.products[i] = *product
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) UpdatePrice(id uuid.UUID, price int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.failIDs[id] {
		return errors.New("store rejected update")
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Price = price
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) Delete(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) priceUpdates() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updateCalls
}

// fakePriceRepo keeps master rows per table.
type fakePriceRepo struct {
	rows       map[model.PriceTable][]model.WeightPrice
	replaceErr error
}

func newFakePriceRepo() *fakePriceRepo {
	return &fakePriceRepo{rows: make(map[model.PriceTable][]model.WeightPrice)}
}

func (f *fakePriceRepo) FindByCategory(table model.PriceTable, categoryID uint) ([]model.WeightPrice, error) {
	var out []model.WeightPrice
	for _, row := range f.rows[table] {
		if row.CategoryID == categoryID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakePriceRepo) FindAll(table model.PriceTable) ([]model.WeightPrice, error) {
	return f.rows[table], nil
}

func (f *fakePriceRepo) Replace(table model.PriceTable, categoryID uint, rows []model.WeightPrice) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	var kept []model.WeightPrice
	for _, row := range f.rows[table] {
		if row.CategoryID != categoryID {
			kept = append(kept, row)
		}
	}
	f.rows[table] = append(kept, rows...)
	return nil
}

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	categories []model.GoldCategory
	nextID     uint
}

func (f *fakeCategoryRepo) Create(category *model.GoldCategory) error {
	f.nextID++
	category.ID = f.nextID
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryRepo) FindAll() ([]model.GoldCategory, error) {
	out := make([]model.GoldCategory, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeCategoryRepo) FindByID(id uint) (*model.GoldCategory, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) Rename(id uint, name string) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].Name = name
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) Delete(id uint) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakeReviewRepo is an in-memory ReviewRepository counting creates.
type fakeReviewRepo struct {
	reviews     []model.Review
	createCalls int
}

func (f *fakeReviewRepo) Create(review *model.Review) error {
	f.createCalls++
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) FindAll() ([]model.Review, error) {
	out := make([]model.Review, len(f.reviews))
	copy(out, f.reviews)
	return out, nil
}

func (f *fakeReviewRepo) FindApproved() ([]model.Review, error) {
	var out []model.Review
	for _, r := range f.reviews {
		if r.IsApproved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Approve(id uuid.UUID) error {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews[i].IsApproved = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeReviewRepo) Delete(id uuid.UUID) error {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
