package usecase

import (
	"context"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(data *fakeData, username string) uuid.UUID {
	id := uuid.New()
	data.users[id] = &entity.User{
		Base:         entity.Base{ID: id, CreatedAt: time.Now()},
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	return id
}

func seedMovie(data *fakeData, title string) uuid.UUID {
	id := uuid.New()
	data.movies[id] = &entity.Movie{
		Base:        entity.Base{ID: id, CreatedAt: time.Now()},
		Title:       title,
		ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC),
		Genre:       "Sci-Fi",
	}
	return id
}

func TestCreateReview_RatingBounds(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	userID := seedUser(data, "alice")
	seedMovie(data, "Inception")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Review.CreateReview(ctx, userID, &request.CreateReviewRequest{
			MovieName: "Inception",
			Rating:    rating,
			Content:   "great",
		})
		require.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
	assert.Equal(t, "Rating must be between 1 and 5.", ErrInvalidRating.Error())

	for rating := 1; rating <= 5; rating++ {
		resp, err := svc.Review.CreateReview(ctx, userID, &request.CreateReviewRequest{
			MovieName: "Inception",
			Rating:    rating,
			Content:   "great",
		})
		require.NoError(t, err, "rating %d", rating)
		assert.Equal(t, rating, resp.Rating)
	}
}

func TestCreateReview_MovieResolvedCaseInsensitively(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	userID := seedUser(data, "alice")
	seedMovie(data, "inception") // stored lowercase

	resp, err := svc.Review.CreateReview(ctx, userID, &request.CreateReviewRequest{
		MovieName: "Inception",
		Rating:    5,
		Content:   "mind-bending",
	})
	require.NoError(t, err)
	assert.Equal(t, "inception", resp.MovieTitle)
}

func TestCreateReview_UnknownMovie(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	userID := seedUser(data, "alice")

	_, err := svc.Review.CreateReview(ctx, userID, &request.CreateReviewRequest{
		MovieName: "Inception",
		Rating:    5,
		Content:   "mind-bending",
	})

	var movieErr *MovieNotFoundError
	require.ErrorAs(t, err, &movieErr)
	assert.Equal(t, "'Inception' is not listed in the movie database!", err.Error())
}

func TestCreateReview_OwnerForcedToActor(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	userID := seedUser(data, "alice")
	seedMovie(data, "Inception")

	resp, err := svc.Review.CreateReview(ctx, userID, &request.CreateReviewRequest{
		MovieName: "Inception",
		Rating:    4,
		Content:   "solid",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.User)

	for _, review := range data.reviews {
		assert.Equal(t, userID, review.UserID)
	}
}

func TestGetReviewByID_RoundTrip(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	userID := seedUser(data, "alice")
	seedMovie(data, "Inception")

	created, err := svc.Review.CreateReview(ctx, userID, &request.CreateReviewRequest{
		MovieName: "Inception",
		Rating:    3,
		Content:   "fine",
	})
	require.NoError(t, err)

	got, err := svc.Review.GetReviewByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Rating, got.Rating)
	assert.Equal(t, created.Content, got.Content)
	assert.Equal(t, created.User, got.User)
	assert.Equal(t, created.MovieTitle, got.MovieTitle)
}

func TestGetReviewByID_NotFound(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	_, err := svc.Review.GetReviewByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)

	// A garbage identifier is also just a missing record
	_, err = svc.Review.GetReviewByID(ctx, "not-a-uuid")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReview_NonOwnerDenied(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	owner := seedUser(data, "alice")
	intruder := seedUser(data, "mallory")
	seedMovie(data, "Inception")

	created, err := svc.Review.CreateReview(ctx, owner, &request.CreateReviewRequest{
		MovieName: "Inception",
		Rating:    4,
		Content:   "solid",
	})
	require.NoError(t, err)

	// Denied regardless of payload validity
	rating := 5
	_, err = svc.Review.UpdateReview(ctx, created.ID, intruder, &request.UpdateReviewRequest{
		Rating: &rating,
	})
	require.ErrorIs(t, err, ErrForbidden)

	// A broken payload must not leak a validation error to a non-owner;
	// the denial comes first.
	empty := ""
	_, err = svc.Review.UpdateReview(ctx, created.ID, intruder, &request.UpdateReviewRequest{
		Content: &empty,
	})
	require.ErrorIs(t, err, ErrForbidden)

	err = svc.Review.DeleteReview(ctx, created.ID, intruder)
	require.ErrorIs(t, err, ErrForbidden)

	// Record untouched
	got, err := svc.Review.GetReviewByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
}

func TestUpdateReview_PartialPayloadRevalidated(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	owner := seedUser(data, "alice")
	seedMovie(data, "Inception")
	seedMovie(data, "Heat")

	created, err := svc.Review.CreateReview(ctx, owner, &request.CreateReviewRequest{
		MovieName: "Inception",
		Rating:    4,
		Content:   "solid",
	})
	require.NoError(t, err)

	// Out-of-range rating rejected on update as well
	bad := 9
	_, err = svc.Review.UpdateReview(ctx, created.ID, owner, &request.UpdateReviewRequest{
		Rating: &bad,
	})
	require.ErrorIs(t, err, ErrInvalidRating)

	// Empty content rejected for the owner
	empty := ""
	_, err = svc.Review.UpdateReview(ctx, created.ID, owner, &request.UpdateReviewRequest{
		Content: &empty,
	})
	require.ErrorIs(t, err, ErrEmptyContent)

	// Unknown movie rejected
	unknown := "Does Not Exist"
	_, err = svc.Review.UpdateReview(ctx, created.ID, owner, &request.UpdateReviewRequest{
		MovieName: &unknown,
	})
	var movieErr *MovieNotFoundError
	require.ErrorAs(t, err, &movieErr)

	// Valid partial update changes only what was sent
	content := "rewatched, even better"
	movie := "heat"
	updated, err := svc.Review.UpdateReview(ctx, created.ID, owner, &request.UpdateReviewRequest{
		Content:   &content,
		MovieName: &movie,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, content, updated.Content)
	assert.Equal(t, "Heat", updated.MovieTitle)
}

func TestDeleteReview_Owner(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	owner := seedUser(data, "alice")
	seedMovie(data, "Inception")

	created, err := svc.Review.CreateReview(ctx, owner, &request.CreateReviewRequest{
		MovieName: "Inception",
		Rating:    4,
		Content:   "solid",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Review.DeleteReview(ctx, created.ID, owner))

	_, err = svc.Review.GetReviewByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetReviews_FiltersComposeWithAND(t *testing.T) {
	data := newFakeData()
	svc := newTestService(data)
	ctx := context.Background()

	userID := seedUser(data, "alice")
	seedMovie(data, "Inception")
	seedMovie(data, "Interstellar")

	mustCreate := func(movie string, rating int) {
		t.Helper()
		_, err := svc.Review.CreateReview(ctx, userID, &request.CreateReviewRequest{
			MovieName: movie,
			Rating:    rating,
			Content:   "c",
		})
		require.NoError(t, err)
	}

	mustCreate("Inception", 5)
	mustCreate("Inception", 3)
	mustCreate("Interstellar", 5)

	all, err := svc.Review.GetReviews(ctx, repository.ReviewFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	rating := 5
	fives, err := svc.Review.GetReviews(ctx, repository.ReviewFilter{Rating: &rating})
	require.NoError(t, err)
	assert.Len(t, fives, 2)

	// rating AND title substring
	both, err := svc.Review.GetReviews(ctx, repository.ReviewFilter{Rating: &rating, Search: "incep"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Inception", both[0].MovieTitle)

	// all reviews were created today
	today := time.Now()
	dated, err := svc.Review.GetReviews(ctx, repository.ReviewFilter{CreateDate: &today})
	require.NoError(t, err)
	assert.Len(t, dated, 3)

	yesterday := today.AddDate(0, 0, -1)
	none, err := svc.Review.GetReviews(ctx, repository.ReviewFilter{CreateDate: &yesterday})
	require.NoError(t, err)
	assert.Empty(t, none)
}
