package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// Movies carry no ownership; list, create, and detail are all open
	r.Get("/movie-list/", movieHandler.GetMovies)
	r.Post("/movie-list/", movieHandler.CreateMovie)
	r.Get("/movie-detail/{id}/", movieHandler.GetMovieByID)
	r.Delete("/movie-detail/{id}/", movieHandler.DeleteMovie)
}
