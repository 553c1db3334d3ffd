package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newReviewFixture() (*fakeReviewRepo, ReviewService) {
	reviewRepo := &fakeReviewRepo{}
	svc := NewReviewService(reviewRepo, newTestHub())
	return reviewRepo, svc
}

func TestSubmitRejectsShortCommentBeforePersisting(t *testing.T) {
	reviewRepo, svc := newReviewFixture()

	_, err := svc.Submit(&ReviewRequest{
		CustomerName: "Budi",
		Rating:       5,
		Comment:      "123456789", // nine characters
	})
	assert.Error(t, err)
	assert.Equal(t, 0, reviewRepo.createCalls)
}

func TestSubmitAcceptsTenCharacterComment(t *testing.T) {
	reviewRepo, svc := newReviewFixture()

	review, err := svc.Submit(&ReviewRequest{
		CustomerName: "Budi",
		Rating:       5,
		Comment:      "1234567890",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, reviewRepo.createCalls)
	assert.False(t, review.IsApproved)
}

func TestSubmitAlwaysEntersPending(t *testing.T) {
	reviewRepo, svc := newReviewFixture()

	_, err := svc.Submit(&ReviewRequest{
		CustomerName: "Siti",
		Rating:       4,
		Comment:      "Pelayanan sangat memuaskan",
	})
	assert.NoError(t, err)

	all, _ := reviewRepo.FindAll()
	assert.Len(t, all, 1)
	assert.False(t, all[0].IsApproved)
}

func TestSubmitValidatesRatingRange(t *testing.T) {
	_, svc := newReviewFixture()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(&ReviewRequest{
			CustomerName: "Budi",
			Rating:       rating,
			Comment:      "Komentar yang cukup panjang",
		})
		assert.Error(t, err)
	}
}

func TestApprovePublishesReview(t *testing.T) {
	_, svc := newReviewFixture()

	review, _ := svc.Submit(&ReviewRequest{
		CustomerName: "Budi",
		Rating:       5,
		Comment:      "Emas asli, pengiriman cepat",
	})

	approved, _ := svc.ApprovedReviews()
	assert.Empty(t, approved)

	assert.NoError(t, svc.Approve(review.ID))

	approved, _ = svc.ApprovedReviews()
	assert.Len(t, approved, 1)
}

func TestApproveUnknownReview(t *testing.T) {
	_, svc := newReviewFixture()
	assert.Error(t, svc.Approve(uuid.New()))
}

func TestModerationCounts(t *testing.T) {
	_, svc := newReviewFixture()

	first, _ := svc.Submit(&ReviewRequest{CustomerName: "A", Rating: 5, Comment: "Sangat puas sekali"})
	svc.Submit(&ReviewRequest{CustomerName: "B", Rating: 4, Comment: "Puas dengan produknya"})
	svc.Approve(first.ID)

	list, err := svc.Moderation()
	assert.NoError(t, err)
	assert.Len(t, list.Reviews, 2)
	assert.Equal(t, 1, list.Pending)
	assert.Equal(t, 1, list.Approved)
}

func TestDeleteReviewEitherState(t *testing.T) {
	reviewRepo, svc := newReviewFixture()

	pending, _ := svc.Submit(&ReviewRequest{CustomerName: "A", Rating: 5, Comment: "Sangat puas sekali"})
	published, _ := svc.Submit(&ReviewRequest{CustomerName: "B", Rating: 4, Comment: "Puas dengan produknya"})
	svc.Approve(published.ID)

	assert.NoError(t, svc.Delete(pending.ID))
	assert.NoError(t, svc.Delete(published.ID))

	all, _ := reviewRepo.FindAll()
	assert.Empty(t, all)
}
