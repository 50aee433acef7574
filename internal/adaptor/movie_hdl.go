package adaptor

import (
	"errors"
	"net/http"

	"movies-api/internal/data/repository"
	"movies-api/internal/dto/request"
	"movies-api/internal/usecase"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies/ and GET /movies/?category=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has("category") {
		h.getMoviesByCategory(w, r, query.Get("category"))
		return
	}

	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

func (h *MovieHandler) getMoviesByCategory(w http.ResponseWriter, r *http.Request, category string) {
	req := request.MovieCategoryQuery{Category: category}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movies, err := h.service.GetMoviesByCategory(r.Context(), req.Category)
	if err != nil {
		h.handleServiceError(w, err, "get movies by category")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// CreateMovie handles POST /movies/
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	req := request.NewMovieRequest()
	if !h.decodeBody(w, r, &req, "create movie") {
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movies, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movies)
}

// UpdateMovie handles PUT /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	req := request.NewMovieUpdateRequest()
	if !h.decodeBody(w, r, &req, "update movie") {
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movies, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movies)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	movies, err := h.service.DeleteMovie(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", movies)
}

// movieID reads and validates the {id} path parameter, answering 400 itself on failure
func (h *MovieHandler) movieID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")

	id, err := utils.ParseInt(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{
			"id": "Must be a valid integer",
		})
		return 0, false
	}

	param := request.MovieIDParam{ID: id}
	if validationErrors := utils.ValidateStruct(param); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return 0, false
	}

	return param.ID, true
}

// decodeBody fills dst from the JSON body, answering 400 itself on failure
func (h *MovieHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst any, operation string) bool {
	fieldErrors, err := utils.DecodeJSON(w, r, dst)
	if err != nil {
		h.log.Debug("Invalid "+operation+" body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	if len(fieldErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", fieldErrors)
		return false
	}
	return true
}

// handleServiceError maps service errors to responses
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, usecase.ErrMovieNotFound.Error())

	case errors.Is(err, repository.ErrDuplicateMovieID):
		h.log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, repository.ErrDuplicateMovieID.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
