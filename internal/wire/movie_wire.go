package wire

import (
	"movies-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// /movies and /movies/ both reach the "/" routes below
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)    // GET /movies/ and GET /movies/?category=
		r.Post("/", movieHandler.CreateMovie) // POST /movies/

		r.Get("/{id}", movieHandler.GetMovieByID)   // GET /movies/{id}
		r.Put("/{id}", movieHandler.UpdateMovie)    // PUT /movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /movies/{id}
	})
}
