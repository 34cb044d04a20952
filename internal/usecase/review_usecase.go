package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ReviewInput defines the data required to post a review.
type ReviewInput struct {
	Rating  int
	Comment string
}

// --- Output DTOs ---

// ReviewListOutput bundles a product's reviews with their aggregates.
type ReviewListOutput struct {
	Reviews []*entity.Review
	Summary *entity.ReviewSummary
}

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	// ListReviews returns all reviews for the product, newest first, with
	// the average rating and review count.
	ListReviews(ctx context.Context, productID uuid.UUID) (*ReviewListOutput, error)

	// CreateReview posts a review on the product for the session user.
	// A user may review a given product at most once.
	CreateReview(ctx context.Context, session *entity.Session, productID uuid.UUID, input *ReviewInput) (*entity.Review, error)
}
