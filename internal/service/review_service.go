package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"go-gold-catalog/internal/model"
	"go-gold-catalog/internal/repository"
	"go-gold-catalog/internal/ws"
	"go-gold-catalog/pkg/validator"
)

type ReviewRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment" validate:"min=10"`
}

// ModerationList is the admin view: everything, newest first, with the
// pending/approved split the dashboard badges show.
type ModerationList struct {
	Reviews  []model.Review `json:"reviews"`
	Pending  int            `json:"pending"`
	Approved int            `json:"approved"`
}

type ReviewService interface {
	Submit(req *ReviewRequest) (*model.Review, error)
	ApprovedReviews() ([]model.Review, error)
	Moderation() (*ModerationList, error)
	Approve(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	wsHub      *ws.Hub
}

func NewReviewService(rRepo repository.ReviewRepository, hub *ws.Hub) ReviewService {
	return &reviewService{reviewRepo: rRepo, wsHub: hub}
}

// Submit takes a public review. It always enters unapproved; there is no
// public path to the approved state.
func (s *reviewService) Submit(req *ReviewRequest) (*model.Review, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Comment = strings.TrimSpace(req.Comment)

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	review := &model.Review{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		IsApproved:   false,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ApprovedReviews() ([]model.Review, error) {
	return s.reviewRepo.FindApproved()
}

func (s *reviewService) Moderation() (*ModerationList, error) {
	reviews, err := s.reviewRepo.FindAll()
	if err != nil {
		return nil, err
	}

	list := &ModerationList{Reviews: reviews}
	for _, r := range reviews {
		if r.IsApproved {
			list.Approved++
		} else {
			list.Pending++
		}
	}
	return list, nil
}

// Approve publishes a pending review. Approved is terminal for display;
// there is no way back to pending.
func (s *reviewService) Approve(id uuid.UUID) error {
	if err := s.reviewRepo.Approve(id); err != nil {
		return err
	}
	s.wsHub.Emit("review_approved", map[string]interface{}{"id": id})
	return nil
}

func (s *reviewService) Delete(id uuid.UUID) error {
	return s.reviewRepo.Delete(id)
}
