package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviews returns all reviews for the product with rating aggregates.
func (srv *reviewService) ListReviews(ctx context.Context, productID uuid.UUID) (*usecase.ReviewListOutput, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for reviews")
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Error("Failed to list reviews", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewListOutput{
		Reviews: reviews,
		Summary: summarizeReviews(reviews),
	}, nil
}

// CreateReview posts a review on the product for the session user.
func (srv *reviewService) CreateReview(ctx context.Context, session *entity.Session, productID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ProductID: productID,
		UserID:    session.UserID,
		Username:  session.Username,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	// Duplicate check and insert share one transaction; the composite unique
	// index on reviews catches the race between concurrent submissions.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product for review")
		}

		reviewRepo := repoFactory.ReviewRepo()

		exists, err := reviewRepo.ExistsByProductAndUser(ctx, productID, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to check review existence")
		}
		if exists {
			return domainerrors.ErrReviewAlreadyExists
		}

		return reviewRepo.Create(ctx, review)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create review",
			slog.Any("productID", productID),
			slog.Any("userID", session.UserID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	srv.log(ctx).Info("Review created", slog.Any("reviewID", review.ID), slog.Any("productID", productID))

	return review, nil
}

func validateReviewInput(input *usecase.ReviewInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("comment must not be blank")
	}

	return nil
}
