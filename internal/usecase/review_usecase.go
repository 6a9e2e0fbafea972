package usecase

import (
	"context"

	"nativoseo/internal/domain/entity"

	"github.com/google/uuid"
)

// ListReviewsInput selects one page of reviews of a location.
type ListReviewsInput struct {
	AccountID  string
	LocationID string
	PageSize   int
	PageToken  string
}

// ReplyReviewInput is the owner's answer to one review.
type ReplyReviewInput struct {
	AccountID  string
	LocationID string
	ReviewID   string
	Comment    string
}

// ReviewUsecase reads and answers location reviews.
type ReviewUsecase interface {
	ListReviews(ctx context.Context, userID uuid.UUID, input *ListReviewsInput) (*entity.ReviewPage, error)
	Stats(ctx context.Context, userID uuid.UUID, accountID, locationID string) (*entity.ReviewStats, error)
	Reply(ctx context.Context, userID uuid.UUID, input *ReplyReviewInput) (*entity.ReviewReply, error)
}
