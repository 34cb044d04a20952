// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a buyer's rating of a product. Each user may review a given
// product at most once.
type Review struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the review.
	ProductID uuid.UUID `json:"product_id"` // The product being reviewed.
	UserID    uuid.UUID `json:"user_id"`    // The user who wrote the review.
	Username  string    `json:"username"`   // Denormalized author name for display.
	Rating    int       `json:"rating"`     // Star rating, 1 through 5.
	Comment   string    `json:"comment"`    // Free-form comment. Required, non-blank.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the review was posted.
}

// ReviewSummary aggregates a product's reviews for the product page.
type ReviewSummary struct {
	AverageRating float64 `json:"average_rating"` // Mean rating rounded to one decimal place. Zero when no reviews.
	TotalReviews  int     `json:"total_reviews"`  // Number of reviews for the product.
}
