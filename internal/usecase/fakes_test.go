package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes standing in for the pgx repositories. They share one
// fakeData so review lookups can join usernames and movie titles the way
// the SQL detail query does.

type fakeData struct {
	users   map[uuid.UUID]*entity.User
	tokens  map[uuid.UUID]*entity.Token
	movies  map[uuid.UUID]*entity.Movie
	reviews map[uuid.UUID]*entity.Review
}

func newFakeData() *fakeData {
	return &fakeData{
		users:   make(map[uuid.UUID]*entity.User),
		tokens:  make(map[uuid.UUID]*entity.Token),
		movies:  make(map[uuid.UUID]*entity.Movie),
		reviews: make(map[uuid.UUID]*entity.Review),
	}
}

func newFakeRepository(data *fakeData) *repository.Repository {
	return &repository.Repository{
		User:   &fakeUserRepo{data: data},
		Token:  &fakeTokenRepo{data: data},
		Movie:  &fakeMovieRepo{data: data},
		Review: &fakeReviewRepo{data: data},
	}
}

func newTestService(data *fakeData) *Service {
	return NewService(newFakeRepository(data), zap.NewNop())
}

// ---------- users ----------

type fakeUserRepo struct {
	data *fakeData
	// createErr simulates a store-level rejection (e.g. unique index)
	createErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u := *user
	f.data.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.data.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range f.data.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

// ---------- tokens ----------

type fakeTokenRepo struct {
	data *fakeData
}

func (f *fakeTokenRepo) Create(ctx context.Context, token *entity.Token) error {
	t := *token
	f.data.tokens[token.ID] = &t
	return nil
}

func (f *fakeTokenRepo) FindByToken(ctx context.Context, token string) (*entity.Token, error) {
	for _, t := range f.data.tokens {
		if t.Token.String() == token {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTokenRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Token, error) {
	for _, t := range f.data.tokens {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, nil
}

// ---------- movies ----------

type fakeMovieRepo struct {
	data *fakeData
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	m := *movie
	f.data.movies[movie.ID] = &m
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := f.data.movies[id]
	if !ok {
		return nil, nil
	}
	return movie, nil
}

func (f *fakeMovieRepo) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	for _, movie := range f.data.movies {
		if strings.EqualFold(movie.Title, title) {
			return movie, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, search string) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for _, movie := range f.data.movies {
		if search == "" || strings.Contains(strings.ToLower(movie.Title), strings.ToLower(search)) {
			movies = append(movies, movie)
		}
	}
	sort.Slice(movies, func(i, j int) bool {
		return movies[i].CreatedAt.After(movies[j].CreatedAt)
	})
	return movies, nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.data.movies[id]; !ok {
		return fmt.Errorf("movie %s not found", id.String())
	}
	delete(f.data.movies, id)
	// ON DELETE CASCADE
	for reviewID, review := range f.data.reviews {
		if review.MovieID == id {
			delete(f.data.reviews, reviewID)
		}
	}
	return nil
}

// ---------- reviews ----------

type fakeReviewRepo struct {
	data *fakeData
}

func (f *fakeReviewRepo) detail(review *entity.Review) *entity.ReviewDetail {
	d := &entity.ReviewDetail{Review: *review}
	if user, ok := f.data.users[review.UserID]; ok {
		d.Username = user.Username
	}
	if movie, ok := f.data.movies[review.MovieID]; ok {
		d.MovieTitle = movie.Title
	}
	return d
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r := *review
	f.data.reviews[review.ID] = &r
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewDetail, error) {
	review, ok := f.data.reviews[id]
	if !ok {
		return nil, nil
	}
	return f.detail(review), nil
}

func (f *fakeReviewRepo) FindAll(ctx context.Context, filter repository.ReviewFilter) ([]*entity.ReviewDetail, error) {
	var details []*entity.ReviewDetail
	for _, review := range f.data.reviews {
		if filter.Rating != nil && review.Rating != *filter.Rating {
			continue
		}
		if filter.CreateDate != nil {
			y1, m1, d1 := review.CreatedAt.Date()
			y2, m2, d2 := filter.CreateDate.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		d := f.detail(review)
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(d.MovieTitle), strings.ToLower(filter.Search)) {
			continue
		}
		details = append(details, d)
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].CreatedAt.After(details[j].CreatedAt)
	})
	return details, nil
}

func (f *fakeReviewRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewDetail, error) {
	var details []*entity.ReviewDetail
	for _, review := range f.data.reviews {
		if review.MovieID == movieID {
			details = append(details, f.detail(review))
		}
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].CreatedAt.After(details[j].CreatedAt)
	})
	return details, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	if _, ok := f.data.reviews[review.ID]; !ok {
		return fmt.Errorf("review %s not found", review.ID.String())
	}
	r := *review
	f.data.reviews[review.ID] = &r
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.data.reviews[id]; !ok {
		return fmt.Errorf("review %s not found", id.String())
	}
	delete(f.data.reviews, id)
	return nil
}
