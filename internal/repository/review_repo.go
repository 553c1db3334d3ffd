package repository

import (
	"go-gold-catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindAll() ([]model.Review, error)
	FindApproved() ([]model.Review, error)
	Approve(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db}
}

func (r *reviewRepo) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepo) FindAll() ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) FindApproved() ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Where("is_approved = ?", true).Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) Approve(id uuid.UUID) error {
	res := r.db.Model(&model.Review{}).Where("id = ?", id).Update("is_approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
