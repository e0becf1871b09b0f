package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context, filter repository.ReviewFilter) ([]response.ReviewResponse, error)
	GetReviewByID(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// 1. Rating must be 1-5
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	// 2. Resolve the movie by case-insensitive exact title
	movie, err := s.repo.Movie.FindByTitle(ctx, req.MovieName)
	if err != nil {
		s.log.Error("Failed to look up movie", zap.Error(err), zap.String("movie_name", req.MovieName))
		return nil, fmt.Errorf("look up movie: %w", err)
	}
	if movie == nil {
		return nil, &MovieNotFoundError{Title: req.MovieName}
	}

	// 3. Create review entity. The owner is always the authenticated
	// actor, never anything taken from the payload.
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		MovieID: movie.ID,
		Rating:  req.Rating,
		Content: req.Content,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movie.ID.String()),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("movie_title", movie.Title),
		zap.Int("rating", review.Rating),
	)

	// 4. Re-read through the detail join for the enriched projection
	detail, err := s.repo.Review.FindByID(ctx, review.ID)
	if err != nil || detail == nil {
		s.log.Error("Failed to load created review", zap.Error(err), zap.String("review_id", review.ID.String()))
		return nil, fmt.Errorf("load created review: %w", err)
	}

	resp := response.ReviewToResponse(detail)
	return &resp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, filter repository.ReviewFilter) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err))
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	// Only the owner may mutate. The record is not hidden from other
	// actors; the mutation is denied.
	if review.UserID != userID {
		s.log.Warn("Review update denied",
			zap.String("review_id", reviewID),
			zap.String("owner_id", review.UserID.String()),
			zap.String("actor_id", userID.String()),
		)
		return nil, ErrForbidden
	}

	// Apply the partial payload; each changed field is re-validated
	updated := review.Review
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}
		updated.Rating = *req.Rating
	}
	if req.Content != nil {
		if *req.Content == "" {
			return nil, ErrEmptyContent
		}
		updated.Content = *req.Content
	}
	if req.MovieName != nil {
		movie, err := s.repo.Movie.FindByTitle(ctx, *req.MovieName)
		if err != nil {
			s.log.Error("Failed to look up movie", zap.Error(err), zap.String("movie_name", *req.MovieName))
			return nil, fmt.Errorf("look up movie: %w", err)
		}
		if movie == nil {
			return nil, &MovieNotFoundError{Title: *req.MovieName}
		}
		updated.MovieID = movie.ID
	}

	if err := s.repo.Review.Update(ctx, &updated); err != nil {
		s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID.String()),
	)

	detail, err := s.repo.Review.FindByID(ctx, updated.ID)
	if err != nil || detail == nil {
		s.log.Error("Failed to load updated review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("load updated review: %w", err)
	}

	resp := response.ReviewToResponse(detail)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != userID {
		s.log.Warn("Review delete denied",
			zap.String("review_id", reviewID),
			zap.String("owner_id", review.UserID.String()),
			zap.String("actor_id", userID.String()),
		)
		return ErrForbidden
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}

func (s *reviewService) findReview(ctx context.Context, reviewID string) (*entity.ReviewDetail, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, ErrNotFound
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, ErrNotFound
	}

	return review, nil
}
