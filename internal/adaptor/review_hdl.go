package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /reviews-list/ (public)
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	filter := parseReviewFilter(r)

	reviews, err := h.service.GetReviews(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.log, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// CreateReview handles POST /reviews-list/ (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetReviewByID handles GET /reviews-detail/{id}/ (public)
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")

	review, err := h.service.GetReviewByID(r.Context(), reviewID)
	if err != nil {
		writeServiceError(w, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// UpdateReview handles PUT/PATCH /reviews-detail/{id}/ (protected, owner)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Field checks happen in the service so ownership is decided first.
	review, err := h.service.UpdateReview(r.Context(), reviewID, userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// DeleteReview handles DELETE /reviews-detail/{id}/ (protected, owner)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")

	if err := h.service.DeleteReview(r.Context(), reviewID, userID); err != nil {
		writeServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}

// parseReviewFilter reads the optional rating / create_date / search
// query parameters. Unparseable values are ignored rather than rejected.
func parseReviewFilter(r *http.Request) repository.ReviewFilter {
	var filter repository.ReviewFilter

	query := r.URL.Query()

	if v := query.Get("rating"); v != "" {
		rating := utils.ParseInt(v, 0)
		if rating != 0 {
			filter.Rating = &rating
		}
	}

	if v := query.Get("create_date"); v != "" {
		if date, err := time.Parse("2006-01-02", v); err == nil {
			filter.CreateDate = &date
		}
	}

	filter.Search = query.Get("search")

	return filter
}
