package usecase

import (
	"context"
	"fmt"

	"movies-api/internal/data/repository"
	"movies-api/internal/dto/request"
	"movies-api/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMoviesByCategory(ctx context.Context, category string) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID int) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) ([]response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int, req *request.MovieUpdateRequest) ([]response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int) ([]response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Info("Movies retrieved", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMoviesByCategory(ctx context.Context, category string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindByCategory(ctx, category)
	if err != nil {
		s.log.Error("Failed to get movies by category",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("get movies by category: %w", err)
	}

	total, err := s.repo.Movie.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	s.log.Info("Movies retrieved by category",
		zap.String("category", category),
		zap.Int("count", len(movies)),
		zap.Int("total", total),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrMovieNotFound)
	}

	s.log.Info("Movie retrieved",
		zap.Int("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.Create(ctx, req.ToEntity())
	if err != nil {
		s.log.Warn("Failed to create movie",
			zap.Error(err),
			zap.Int("movie_id", req.ID),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int("movie_id", req.ID),
		zap.String("title", req.Title),
		zap.Int("total", len(movies)),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID int, req *request.MovieUpdateRequest) ([]response.MovieResponse, error) {
	matched, movies, err := s.repo.Movie.Update(ctx, movieID, req.ToFields())
	if err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	if matched == 0 {
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrMovieNotFound)
	}

	s.log.Info("Movie updated",
		zap.Int("movie_id", movieID),
		zap.String("title", req.Title),
		zap.Int("matched", matched),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID int) ([]response.MovieResponse, error) {
	removed, movies, err := s.repo.Movie.Delete(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("delete movie: %w", err)
	}

	if removed == 0 {
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrMovieNotFound)
	}

	s.log.Info("Movie deleted",
		zap.Int("movie_id", movieID),
		zap.Int("removed", removed),
	)

	return response.MoviesToResponse(movies), nil
}
