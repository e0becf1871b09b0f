package usecase

import (
	"context"
	"testing"

	"movie-review/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovie(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	resp, err := svc.Movie.CreateMovie(ctx, &request.MovieRequest{
		Title:       "Inception",
		ReleaseDate: "2010-07-16",
		Genre:       "Sci-Fi",
	})
	require.NoError(t, err)
	assert.Equal(t, "Inception", resp.Title)
	assert.Equal(t, "2010-07-16", resp.ReleaseDate)
	assert.Equal(t, "Sci-Fi", resp.Genre)
	assert.Len(t, data.movies, 1)
}

func TestGetMovies_TitleSearch(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	seedMovie(data, "Inception")
	seedMovie(data, "Interstellar")
	seedMovie(data, "Heat")

	all, err := svc.Movie.GetMovies(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	in, err := svc.Movie.GetMovies(ctx, "in")
	require.NoError(t, err)
	assert.Len(t, in, 2)

	heat, err := svc.Movie.GetMovies(ctx, "HEAT")
	require.NoError(t, err)
	require.Len(t, heat, 1)
	assert.Equal(t, "Heat", heat[0].Title)
}

func TestGetMovieByID_IncludesNestedReviews(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	userID := seedUser(data, "alice")
	movieID := seedMovie(data, "Inception")
	seedMovie(data, "Heat")

	_, err := svc.Review.CreateReview(ctx, userID, &request.CreateReviewRequest{
		MovieName: "Inception",
		Rating:    5,
		Content:   "mind-bending",
	})
	require.NoError(t, err)

	detail, err := svc.Movie.GetMovieByID(ctx, movieID.String())
	require.NoError(t, err)
	assert.Equal(t, "Inception", detail.Title)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "alice", detail.Reviews[0].User)
	assert.Equal(t, "Inception", detail.Reviews[0].MovieTitle)
	assert.Equal(t, 5, detail.Reviews[0].Rating)
}

func TestGetMovieByID_NotFound(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	_, err := svc.Movie.GetMovieByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Movie.GetMovieByID(ctx, "garbage")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMovie_CascadesToReviews(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	userID := seedUser(data, "alice")
	movieID := seedMovie(data, "Inception")

	_, err := svc.Review.CreateReview(ctx, userID, &request.CreateReviewRequest{
		MovieName: "Inception",
		Rating:    5,
		Content:   "mind-bending",
	})
	require.NoError(t, err)
	require.Len(t, data.reviews, 1)

	require.NoError(t, svc.Movie.DeleteMovie(ctx, movieID.String()))

	assert.Empty(t, data.movies)
	assert.Empty(t, data.reviews, "reviews must cascade-delete with their movie")
}
