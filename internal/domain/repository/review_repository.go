package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// ListByProduct retrieves all reviews for a product, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// ExistsByProductAndUser reports whether the user has already reviewed the product.
	ExistsByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (bool, error)

	// Create persists a new review entity to the storage.
	Create(ctx context.Context, review *entity.Review) error

	// DeleteByProduct removes all reviews attached to a product.
	// Used when the owning product is deleted.
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}
