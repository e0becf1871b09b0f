package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
	Rating  int       `db:"rating"` // 1-5
	Content string    `db:"review_content"`
}

// ReviewDetail is a Review joined with its owner's username and the
// reviewed movie's title. Read-only projection, never written back.
type ReviewDetail struct {
	Review
	Username   string `db:"username"`
	MovieTitle string `db:"movie_title"`
}
