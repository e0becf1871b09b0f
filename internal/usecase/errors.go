package usecase

import (
	"errors"
	"fmt"
)

// Service error taxonomy. Handlers map these to HTTP statuses with
// errors.Is / errors.As; the messages are part of the API contract.
var (
	ErrEmailTaken         = errors.New("This email already exists")
	ErrUsernameTaken      = errors.New("This username is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRating      = errors.New("Rating must be between 1 and 5.")
	ErrEmptyContent       = errors.New("review_content must not be empty")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("you do not have permission to modify this review")
)

// MovieNotFoundError reports a review submission naming an unknown movie.
// Formatted with the submitted title.
type MovieNotFoundError struct {
	Title string
}

func (e *MovieNotFoundError) Error() string {
	return fmt.Sprintf("'%s' is not listed in the movie database!", e.Title)
}
