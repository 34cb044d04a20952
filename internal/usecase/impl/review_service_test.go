package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	reviewRepo  *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		ReviewRepo:  reviewRepo,
		Logger:      newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

func testSession() *entity.Session {
	return &entity.Session{
		UserID:    uuid.New(),
		Username:  "alice",
		Email:     "alice@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), ProductID: productID, Rating: 2},
		{ID: uuid.New(), ProductID: productID, Rating: 5},
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().ListByProduct(ctx, productID).Return(reviews, nil)

	output, err := fx.service.ListReviews(ctx, productID)

	require.NoError(t, err)
	assert.Len(t, output.Reviews, 2)
	assert.InDelta(t, 3.5, output.Summary.AverageRating, 0.001)
	assert.Equal(t, 2, output.Summary.TotalReviews)
}

func TestReviewService_ListReviews_ProductMissing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.ListReviews(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	session := testSession()
	productID := uuid.New()
	input := &usecase.ReviewInput{Rating: 4, Comment: "Sturdy and well made."}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
			mockReviewRepo.EXPECT().
				ExistsByProductAndUser(ctx, productID, session.UserID).
				Return(false, nil)
			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Run(func(ctx context.Context, review *entity.Review) {
					review.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	review, err := fx.service.CreateReview(ctx, session, productID, input)

	require.NoError(t, err)
	assert.Equal(t, session.UserID, review.UserID)
	assert.Equal(t, session.Username, review.Username)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	session := testSession()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
			mockReviewRepo.EXPECT().
				ExistsByProductAndUser(ctx, productID, session.UserID).
				Return(true, nil)

			return fn(mockFactory)
		})

	review, err := fx.service.CreateReview(ctx, session, productID, &usecase.ReviewInput{Rating: 5, Comment: "Again!"})

	require.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))
}

func TestReviewService_CreateReview_ProductMissing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	session := testSession()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	review, err := fx.service.CreateReview(ctx, session, productID, &usecase.ReviewInput{Rating: 3, Comment: "ok"})

	require.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestReviewService_CreateReview_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ReviewInput
	}{
		{name: "rating too low", input: &usecase.ReviewInput{Rating: 0, Comment: "fine"}},
		{name: "rating too high", input: &usecase.ReviewInput{Rating: 6, Comment: "fine"}},
		{name: "blank comment", input: &usecase.ReviewInput{Rating: 3, Comment: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)

			review, err := fx.service.CreateReview(context.Background(), testSession(), uuid.New(), tt.input)

			require.Error(t, err)
			assert.Nil(t, review)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestReviewService_CreateReview_NilSession(t *testing.T) {
	fx := createTestReviewService(t)

	review, err := fx.service.CreateReview(context.Background(), nil, uuid.New(), &usecase.ReviewInput{Rating: 3, Comment: "ok"})

	require.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
