package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProductInput defines the data required to create or fully update a product.
// Price is in whole currency units; it is converted to cents before storage.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	InStock     bool
}

// --- Output DTOs ---

// ProductDetailOutput bundles a product with its review aggregates for the
// public product page.
type ProductDetailOutput struct {
	Product *entity.Product
	Summary *entity.ReviewSummary
	Reviews []*entity.Review
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// ListProducts returns all products, optionally filtered by category.
	ListProducts(ctx context.Context, category string) ([]*entity.Product, error)

	// GetProduct returns a single product with its reviews and rating summary.
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetailOutput, error)

	// ListSellerProducts returns the products owned by the seller.
	ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// GetSellerProduct returns one product after verifying the seller owns it.
	GetSellerProduct(ctx context.Context, sellerID, productID uuid.UUID) (*entity.Product, error)

	// CreateProduct creates a product owned by the seller.
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// UpdateProduct replaces the product's mutable fields after verifying ownership.
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes the product and its reviews after verifying ownership.
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error

	// GenerateShareQR renders a PNG QR code linking to the public product page.
	GenerateShareQR(ctx context.Context, productID uuid.UUID) ([]byte, error)
}
