package request

// CreateReviewRequest carries movie_name for input only; responses carry
// the resolved movie title instead. Rating range is checked in the service
// so the error message matches the API contract.
type CreateReviewRequest struct {
	MovieName string `json:"movie_name" validate:"required"`
	Rating    int    `json:"rating"`
	Content   string `json:"review_content" validate:"required"`
}

// UpdateReviewRequest carries a partial payload. Field content is checked
// in the service, after the ownership check, so a non-owner is always
// denied before any payload problem is reported.
type UpdateReviewRequest struct {
	MovieName *string `json:"movie_name,omitempty"`
	Rating    *int    `json:"rating,omitempty"`
	Content   *string `json:"review_content,omitempty"`
}
