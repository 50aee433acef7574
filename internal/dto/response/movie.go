package response

import "movies-api/internal/data/entity"

type MovieResponse struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Overview string  `json:"overview"`
	Year     int     `json:"year"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Overview: movie.Overview,
		Year:     movie.Year,
		Rating:   movie.Rating,
		Category: movie.Category,
	}
}

// MoviesToResponse never returns nil so an empty store encodes as [].
func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	resp := make([]MovieResponse, len(movies))
	for i := range movies {
		resp[i] = MovieToResponse(&movies[i])
	}
	return resp
}
