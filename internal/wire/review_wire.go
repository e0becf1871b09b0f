package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Anyone may read reviews, authenticated or not
	r.Get("/reviews-list/", reviewHandler.GetReviews)
	r.Get("/reviews-detail/{id}/", reviewHandler.GetReviewByID)

	// ==================== PROTECTED ROUTES (require token) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(repo.Token, log))

		// POST /reviews-list/ - create review, owner forced to the actor
		r.Post("/reviews-list/", reviewHandler.CreateReview)

		// PUT/PATCH/DELETE /reviews-detail/{id}/ - owner only
		r.Put("/reviews-detail/{id}/", reviewHandler.UpdateReview)
		r.Patch("/reviews-detail/{id}/", reviewHandler.UpdateReview)
		r.Delete("/reviews-detail/{id}/", reviewHandler.DeleteReview)
	})
}
