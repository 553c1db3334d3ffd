package repository

import (
	"go-gold-catalog/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.GoldCategory) error
	FindAll() ([]model.GoldCategory, error)
	FindByID(id uint) (*model.GoldCategory, error)
	Rename(id uint, name string) error
	Delete(id uint) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.GoldCategory) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll() ([]model.GoldCategory, error) {
	var categories []model.GoldCategory
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uint) (*model.GoldCategory, error) {
	var category model.GoldCategory
	err := r.db.First(&category, "id = ?", id).Error
	return &category, err
}

func (r *categoryRepo) Rename(id uint, name string) error {
	res := r.db.Model(&model.GoldCategory{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the category and cascades to its price rows in both tables
// within one transaction, so readers never see orphaned prices.
func (r *categoryRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []model.PriceTable{model.TableSell, model.TableBuyback} {
			name, err := table.TableName()
			if err != nil {
				return err
			}
			if err := tx.Table(name).Where("category_id = ?", id).Delete(&model.WeightPrice{}).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&model.GoldCategory{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
