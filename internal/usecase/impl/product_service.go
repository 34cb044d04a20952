package impl

import (
	"context"
	"log/slog"
	"math"
	"net/url"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		reviewRepo:  params.ReviewRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns all products, optionally filtered by category.
func (srv *productService) ListProducts(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, category)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.String("category", category), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single product with its reviews and rating summary.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetailOutput, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Error("Failed to list product reviews", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return &usecase.ProductDetailOutput{
		Product: product,
		Summary: summarizeReviews(reviews),
		Reviews: reviews,
	}, nil
}

// ListSellerProducts returns the products owned by the seller.
func (srv *productService) ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list seller products", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// GetSellerProduct returns one product after verifying the seller owns it.
// Existence is checked before ownership so a missing product reads as 404,
// never as 403.
func (srv *productService) GetSellerProduct(ctx context.Context, sellerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := srv.authorizeOwner(ctx, sellerID, product); err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct creates a product owned by the seller.
func (srv *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		SellerID:    sellerID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  priceToCents(input.Price),
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		InStock:     input.InStock,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("sellerID", sellerID))

	return product, nil
}

// UpdateProduct replaces the product's mutable fields after verifying ownership.
// Concurrent updates are last-write-wins.
func (srv *productService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := srv.authorizeOwner(ctx, sellerID, product); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.PriceCents = priceToCents(input.Price)
	product.Category = input.Category
	product.ImageURL = input.ImageURL
	product.InStock = input.InStock

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", productID), slog.Any("sellerID", sellerID))

	return product, nil
}

// DeleteProduct removes the product and its reviews after verifying ownership.
func (srv *productService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return err
	}
	if err := srv.authorizeOwner(ctx, sellerID, product); err != nil {
		return err
	}

	// Reviews and the product row go together or not at all.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().DeleteByProduct(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete product reviews")
		}

		return repoFactory.ProductRepo().Delete(ctx, productID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute product deletion transaction")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("sellerID", sellerID))

	return nil
}

// GenerateShareQR renders a PNG QR code linking to the public product page.
func (srv *productService) GenerateShareQR(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	// Confirm the product exists so the QR never points at a dead page.
	if _, err := srv.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProductQR(productID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate product QR code", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

func (srv *productService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to find product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) authorizeOwner(ctx context.Context, sellerID uuid.UUID, product *entity.Product) error {
	if product.SellerID != sellerID {
		srv.log(ctx).Warn("Product ownership violation",
			slog.Any("productID", product.ID),
			slog.Any("ownerID", product.SellerID),
			slog.Any("requesterID", sellerID))

		return domainerrors.ErrProductOwnershipViolation
	}

	return nil
}

func validateProductInput(input *usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("category is required")
	}
	if input.Price <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must be greater than 0")
	}
	// Description is optional. The image URL is optional too, but when present
	// it has to be an absolute URL.
	if input.ImageURL != "" {
		parsed, err := url.Parse(input.ImageURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return domainerrors.ErrValidationFailed.WithDetails("image URL is invalid")
		}
	}

	return nil
}

// priceToCents converts a price in currency units to integer cents,
// rounding to the nearest cent.
func priceToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// summarizeReviews computes the average rating (one decimal place) and count.
func summarizeReviews(reviews []*entity.Review) *entity.ReviewSummary {
	summary := &entity.ReviewSummary{TotalReviews: len(reviews)}
	if len(reviews) == 0 {
		return summary
	}

	var total int
	for _, review := range reviews {
		total += review.Rating
	}
	average := float64(total) / float64(len(reviews))
	summary.AverageRating = math.Round(average*10) / 10

	return summary
}
