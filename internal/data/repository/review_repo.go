package repository

import (
	"context"
	"fmt"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReviewFilter narrows FindAll. Nil/empty fields are ignored; set fields
// compose with AND.
type ReviewFilter struct {
	Rating     *int
	CreateDate *time.Time // matched on the calendar date only
	Search     string     // movie title substring, case-insensitive
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewDetail, error)
	FindAll(ctx context.Context, filter ReviewFilter) ([]*entity.ReviewDetail, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewDetail, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

// detailColumns joins each review with its owner's username and the
// reviewed movie's title.
const detailColumns = `
	SELECT r.id, r.user_id, r.movie_id, r.rating, r.review_content, r.created_at,
	       u.username, m.title AS movie_title
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN movies m ON m.id = r.movie_id
`

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, rating, review_content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.Content,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewDetail, error) {
	query := detailColumns + `WHERE r.id = $1`

	var review entity.ReviewDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.Content,
		&review.CreatedAt,
		&review.Username,
		&review.MovieTitle,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, filter ReviewFilter) ([]*entity.ReviewDetail, error) {
	query := detailColumns + `
		WHERE ($1::int IS NULL OR r.rating = $1)
		  AND ($2::date IS NULL OR r.created_at::date = $2::date)
		  AND ($3::text = '' OR m.title ILIKE '%' || $3 || '%')
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, filter.Rating, filter.CreateDate, filter.Search)
	if err != nil {
		r.log.Error("Failed to find reviews",
			zap.Error(err),
			zap.String("search", filter.Search),
		)
		return nil, fmt.Errorf("find all reviews: %w", err)
	}
	defer rows.Close()

	return scanReviewDetails(rows, r.log)
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewDetail, error) {
	query := detailColumns + `
		WHERE r.movie_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	return scanReviewDetails(rows, r.log)
}

func scanReviewDetails(rows pgx.Rows, log *zap.Logger) ([]*entity.ReviewDetail, error) {
	var reviews []*entity.ReviewDetail
	for rows.Next() {
		var review entity.ReviewDetail
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.Content,
			&review.CreatedAt,
			&review.Username,
			&review.MovieTitle,
		)
		if err != nil {
			log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// Update mutates rating, content, and movie reference. The owner and
// creation timestamp never change.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, review_content = $3, movie_id = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Content,
		review.MovieID,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}
