package usecase

import (
	"errors"

	"movies-api/internal/data/repository"

	"go.uber.org/zap"
)

var ErrMovieNotFound = errors.New("movie not found")

type Service struct {
	Movie MovieService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie: NewMovieService(repo, log),
	}
}
