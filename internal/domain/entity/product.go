// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a seller-owned listing. All mutation and deletion of a product
// is gated on the requester's identity equalling SellerID.
type Product struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the product.
	SellerID    uuid.UUID `json:"seller_id"`   // The ID of the user who created (and owns) this product.
	Name        string    `json:"name"`        // Display name of the product.
	Description string    `json:"description"` // Optional free-form description.
	PriceCents  int64     `json:"price_cents"` // Price in cents. Stored as an integer to avoid float drift.
	Category    string    `json:"category"`    // Category label used for browsing filters.
	ImageURL    string    `json:"image_url"`   // Optional image URL. Empty when the seller provided none.
	InStock     bool      `json:"in_stock"`    // Whether the product is currently available.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this listing was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
