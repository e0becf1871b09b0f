package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	Rating     int       `json:"rating"`
	MovieTitle string    `json:"movie_title"`
	Content    string    `json:"review_content"`
	CreateDate time.Time `json:"create_date"`
	User       string    `json:"user"`
}

// Helper converter
func ReviewToResponse(review *entity.ReviewDetail) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		Rating:     review.Rating,
		MovieTitle: review.MovieTitle,
		Content:    review.Content,
		CreateDate: review.CreatedAt,
		User:       review.Username,
	}
}

func ReviewsToResponse(reviews []*entity.ReviewDetail) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, ReviewToResponse(review))
	}
	return out
}
