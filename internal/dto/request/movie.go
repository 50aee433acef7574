package request

import "movies-api/internal/data/entity"

// Defaults applied to fields omitted from a request body.
const (
	DefaultMovieID       = 1
	DefaultMovieTitle    = "My Movie"
	DefaultMovieOverview = "This movie is about ..."
	DefaultMovieYear     = 2025
	DefaultMovieRating   = 5.0
	DefaultMovieCategory = "Action"
)

type MovieRequest struct {
	ID       int     `json:"id" validate:"gte=1"`
	Title    string  `json:"title" validate:"min=5,max=30"`
	Overview string  `json:"overview" validate:"min=15,max=100"`
	Year     int     `json:"year" validate:"gte=1900,notfutureyear"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=10"`
	Category string  `json:"category" validate:"min=5,max=10"`
}

// NewMovieRequest returns a request prefilled with defaults; decoding a body
// into it only overwrites the fields the client sent.
func NewMovieRequest() MovieRequest {
	return MovieRequest{
		ID:       DefaultMovieID,
		Title:    DefaultMovieTitle,
		Overview: DefaultMovieOverview,
		Year:     DefaultMovieYear,
		Rating:   DefaultMovieRating,
		Category: DefaultMovieCategory,
	}
}

func (r MovieRequest) ToEntity() *entity.Movie {
	return &entity.Movie{
		ID:       r.ID,
		Title:    r.Title,
		Overview: r.Overview,
		Year:     r.Year,
		Rating:   r.Rating,
		Category: r.Category,
	}
}

// MovieUpdateRequest carries every field except the id, which comes from the path.
type MovieUpdateRequest struct {
	Title    string  `json:"title" validate:"min=5,max=30"`
	Overview string  `json:"overview" validate:"min=15,max=100"`
	Year     int     `json:"year" validate:"gte=1900,notfutureyear"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=10"`
	Category string  `json:"category" validate:"min=5,max=10"`
}

func NewMovieUpdateRequest() MovieUpdateRequest {
	return MovieUpdateRequest{
		Title:    DefaultMovieTitle,
		Overview: DefaultMovieOverview,
		Year:     DefaultMovieYear,
		Rating:   DefaultMovieRating,
		Category: DefaultMovieCategory,
	}
}

func (r MovieUpdateRequest) ToFields() entity.MovieFields {
	return entity.MovieFields{
		Title:    r.Title,
		Overview: r.Overview,
		Year:     r.Year,
		Rating:   r.Rating,
		Category: r.Category,
	}
}

// MovieIDParam is the {id} path segment.
type MovieIDParam struct {
	ID int `param:"id" validate:"gt=0"`
}

// MovieCategoryQuery is the ?category= filter.
type MovieCategoryQuery struct {
	Category string `query:"category" validate:"min=5,max=10"`
}
