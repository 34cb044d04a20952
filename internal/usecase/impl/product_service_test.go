package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	reviewRepo  *mockRepo.MockReviewRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		ReviewRepo:  reviewRepo,
		QRService:   qrService,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		qrService:   qrService,
	}
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Ceramic Mug",
		Description: "Hand-thrown stoneware mug",
		Price:       24.99,
		Category:    "kitchen",
		ImageURL:    "https://cdn.example.com/mug.jpg",
		InStock:     true,
	}
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expected := []*entity.Product{{ID: uuid.New(), Name: "Ceramic Mug"}}

	fx.productRepo.EXPECT().List(ctx, "kitchen").Return(expected, nil)

	products, err := fx.service.ListProducts(ctx, "kitchen")

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_GetProduct_WithSummary(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Ceramic Mug"}
	reviews := []*entity.Review{
		{ID: uuid.New(), ProductID: productID, Rating: 5},
		{ID: uuid.New(), ProductID: productID, Rating: 4},
		{ID: uuid.New(), ProductID: productID, Rating: 4},
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.reviewRepo.EXPECT().ListByProduct(ctx, productID).Return(reviews, nil)

	output, err := fx.service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, product, output.Product)
	assert.Len(t, output.Reviews, 3)
	// (5+4+4)/3 = 4.333... rounds to one decimal place.
	assert.InDelta(t, 4.3, output.Summary.AverageRating, 0.001)
	assert.Equal(t, 3, output.Summary.TotalReviews)
}

func TestProductService_GetProduct_NoReviews(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().ListByProduct(ctx, productID).Return(nil, nil)

	output, err := fx.service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Zero(t, output.Summary.AverageRating)
	assert.Zero(t, output.Summary.TotalReviews)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.GetProduct(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_CreateProduct_ConvertsPriceToCents(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	input := validProductInput()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, sellerID, input)

	require.NoError(t, err)
	assert.Equal(t, sellerID, product.SellerID)
	// 24.99 * 100 = 2499, rounded to the nearest cent.
	assert.Equal(t, int64(2499), product.PriceCents)
}

func TestProductService_CreateProduct_DescriptionOptional(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := validProductInput()
	input.Description = ""
	input.ImageURL = ""

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, uuid.New(), input)

	require.NoError(t, err)
	assert.Empty(t, product.Description)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.ProductInput)
	}{
		{name: "blank name", mutate: func(in *usecase.ProductInput) { in.Name = "  " }},
		{name: "blank category", mutate: func(in *usecase.ProductInput) { in.Category = "" }},
		{name: "zero price", mutate: func(in *usecase.ProductInput) { in.Price = 0 }},
		{name: "negative price", mutate: func(in *usecase.ProductInput) { in.Price = -1 }},
		{name: "relative image url", mutate: func(in *usecase.ProductInput) { in.ImageURL = "/mug.jpg" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			input := validProductInput()
			tt.mutate(input)

			product, err := fx.service.CreateProduct(context.Background(), uuid.New(), input)

			require.Error(t, err)
			assert.Nil(t, product)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestProductService_UpdateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	productID := uuid.New()
	existing := &entity.Product{ID: productID, SellerID: sellerID, Name: "Old Name", PriceCents: 1000}

	input := validProductInput()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
	fx.productRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.UpdateProduct(ctx, sellerID, productID, input)

	require.NoError(t, err)
	assert.Equal(t, "Ceramic Mug", product.Name)
	assert.Equal(t, int64(2499), product.PriceCents)
}

func TestProductService_UpdateProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{ID: productID, SellerID: uuid.New()}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)

	product, err := fx.service.UpdateProduct(ctx, uuid.New(), productID, validProductInput())

	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestProductService_UpdateProduct_NotFoundBeforeOwnership(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	// A missing product must surface as not-found, never as an ownership error.
	product, err := fx.service.UpdateProduct(ctx, uuid.New(), productID, validProductInput())

	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	productID := uuid.New()
	existing := &entity.Product{ID: productID, SellerID: sellerID}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockReviewRepo.EXPECT().DeleteByProduct(ctx, productID).Return(nil)
			mockProductRepo.EXPECT().Delete(ctx, productID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteProduct(ctx, sellerID, productID)

	require.NoError(t, err)
}

func TestProductService_DeleteProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{ID: productID, SellerID: uuid.New()}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)

	err := fx.service.DeleteProduct(ctx, uuid.New(), productID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestProductService_GenerateShareQR(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.qrService.EXPECT().GenerateProductQR(productID).Return([]byte("png-bytes"), nil)

	png, err := fx.service.GenerateShareQR(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestProductService_GenerateShareQR_ProductMissing(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	png, err := fx.service.GenerateShareQR(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
