package repository

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrDuplicateMovieID is returned by Create when unique ids are enforced.
	ErrDuplicateMovieID = errors.New("movie id already exists")
)

type Repository struct {
	Movie MovieRepository
}

type Option func(*options)

type options struct {
	uniqueIDs bool
}

// WithUniqueIDs makes the movie store reject appends whose id is already present.
func WithUniqueIDs(enabled bool) Option {
	return func(o *options) {
		o.uniqueIDs = enabled
	}
}

// NewRepository builds the in-memory stores. They live as long as the returned value.
func NewRepository(log *zap.Logger, opts ...Option) *Repository {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Repository{
		Movie: NewMovieRepository(log, o.uniqueIDs),
	}
}
