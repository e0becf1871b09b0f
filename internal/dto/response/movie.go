package response

import (
	"movie-review/internal/data/entity"
)

type MovieResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Genre       string `json:"genre"`
}

// MovieDetailResponse includes the movie's full review collection.
type MovieDetailResponse struct {
	MovieResponse
	Reviews []ReviewResponse `json:"reviews"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		ReleaseDate: movie.ReleaseDate.Format("2006-01-02"),
		Genre:       movie.Genre,
	}
}

func MovieToDetailResponse(movie *entity.Movie, reviews []*entity.ReviewDetail) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie),
		Reviews:       ReviewsToResponse(reviews),
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		out = append(out, MovieToResponse(movie))
	}
	return out
}
