package repository

import (
	"context"
	"fmt"
	"sync"

	"movies-api/internal/data/entity"

	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) ([]entity.Movie, error)
	FindByID(ctx context.Context, id int) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]entity.Movie, error)
	FindByCategory(ctx context.Context, category string) ([]entity.Movie, error)
	Update(ctx context.Context, id int, fields entity.MovieFields) (int, []entity.Movie, error)
	Delete(ctx context.Context, id int) (int, []entity.Movie, error)

	Count(ctx context.Context) (int, error)
}

// movieRepository keeps movies in insertion order. Every method copies data in
// and out so callers never share memory with the store.
type movieRepository struct {
	sync.RWMutex
	movies    []entity.Movie
	uniqueIDs bool
	log       *zap.Logger
}

func NewMovieRepository(log *zap.Logger, uniqueIDs bool) MovieRepository {
	return &movieRepository{
		movies:    []entity.Movie{},
		uniqueIDs: uniqueIDs,
		log:       log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(_ context.Context, movie *entity.Movie) ([]entity.Movie, error) {
	r.Lock()
	defer r.Unlock()

	if r.uniqueIDs && r.indexOf(movie.ID) >= 0 {
		r.log.Warn("Duplicate movie id rejected", zap.Int("movie_id", movie.ID))
		return nil, fmt.Errorf("create movie %d: %w", movie.ID, ErrDuplicateMovieID)
	}

	r.movies = append(r.movies, *movie)

	r.log.Debug("Movie appended",
		zap.Int("movie_id", movie.ID),
		zap.Int("total", len(r.movies)),
	)

	return r.snapshot(), nil
}

// FindByID returns the first movie with the given id, or nil when there is none.
func (r *movieRepository) FindByID(_ context.Context, id int) (*entity.Movie, error) {
	r.RLock()
	defer r.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	movie := r.movies[i]
	return &movie, nil
}

func (r *movieRepository) FindAll(_ context.Context) ([]entity.Movie, error) {
	r.RLock()
	defer r.RUnlock()

	return r.snapshot(), nil
}

func (r *movieRepository) FindByCategory(_ context.Context, category string) ([]entity.Movie, error) {
	r.RLock()
	defer r.RUnlock()

	movies := []entity.Movie{}
	for _, movie := range r.movies {
		if movie.Category == category {
			movies = append(movies, movie)
		}
	}

	r.log.Debug("Movies filtered by category",
		zap.String("category", category),
		zap.Int("count", len(movies)),
	)

	return movies, nil
}

// Update overwrites every movie carrying the id, not only the first one.
func (r *movieRepository) Update(_ context.Context, id int, fields entity.MovieFields) (int, []entity.Movie, error) {
	r.Lock()
	defer r.Unlock()

	matched := 0
	for i := range r.movies {
		if r.movies[i].ID == id {
			r.movies[i].Apply(fields)
			matched++
		}
	}

	r.log.Debug("Movies updated",
		zap.Int("movie_id", id),
		zap.Int("matched", matched),
	)

	return matched, r.snapshot(), nil
}

// Delete removes every movie carrying the id in a single filter pass.
func (r *movieRepository) Delete(_ context.Context, id int) (int, []entity.Movie, error) {
	r.Lock()
	defer r.Unlock()

	kept := r.movies[:0]
	for _, movie := range r.movies {
		if movie.ID != id {
			kept = append(kept, movie)
		}
	}
	removed := len(r.movies) - len(kept)

	// clear the tail so the backing array does not keep stale copies around
	clear(r.movies[len(kept):])
	r.movies = kept

	r.log.Debug("Movies deleted",
		zap.Int("movie_id", id),
		zap.Int("removed", removed),
	)

	return removed, r.snapshot(), nil
}

func (r *movieRepository) Count(_ context.Context) (int, error) {
	r.RLock()
	defer r.RUnlock()

	return len(r.movies), nil
}

// indexOf must be called with the lock held.
func (r *movieRepository) indexOf(id int) int {
	for i := range r.movies {
		if r.movies[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshot must be called with the lock held.
func (r *movieRepository) snapshot() []entity.Movie {
	movies := make([]entity.Movie, len(r.movies))
	copy(movies, r.movies)
	return movies
}
