package repository

import (
	"go-gold-catalog/internal/model"

	"gorm.io/gorm"
)

type PriceRepository interface {
	FindByCategory(table model.PriceTable, categoryID uint) ([]model.WeightPrice, error)
	FindAll(table model.PriceTable) ([]model.WeightPrice, error)
	Replace(table model.PriceTable, categoryID uint, rows []model.WeightPrice) error
}

type priceRepo struct {
	db *gorm.DB
}

func NewPriceRepo(db *gorm.DB) PriceRepository {
	return &priceRepo{db}
}

func (r *priceRepo) FindByCategory(table model.PriceTable, categoryID uint) ([]model.WeightPrice, error) {
	name, err := table.TableName()
	if err != nil {
		return nil, err
	}
	var rows []model.WeightPrice
	err = r.db.Table(name).
		Where("category_id = ?", categoryID).
		Order("weight asc").
		Find(&rows).Error
	return rows, err
}

func (r *priceRepo) FindAll(table model.PriceTable) ([]model.WeightPrice, error) {
	name, err := table.TableName()
	if err != nil {
		return nil, err
	}
	var rows []model.WeightPrice
	err = r.db.Table(name).Order("category_id asc, weight asc").Find(&rows).Error
	return rows, err
}

// Replace swaps the full row set for one category: delete then insert, inside
// a single transaction so no reader observes an empty table window.
func (r *priceRepo) Replace(table model.PriceTable, categoryID uint, rows []model.WeightPrice) error {
	name, err := table.TableName()
	if err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(name).Where("category_id = ?", categoryID).Delete(&model.WeightPrice{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Table(name).Create(&rows).Error
	})
}
