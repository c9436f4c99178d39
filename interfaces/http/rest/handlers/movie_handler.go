package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"movies-backend/application/queries"
	"movies-backend/domain/catalog"
	"movies-backend/pkg/attrjson"
	apperrors "movies-backend/pkg/errors"

	"go.uber.org/zap"
)

// MovieSearcher runs movie searches
type MovieSearcher interface {
	Handle(ctx context.Context, query queries.SearchMoviesQuery) ([]catalog.Item, error)
}

// MovieHandler handles movie-related HTTP requests
type MovieHandler struct {
	searcher     MovieSearcher
	errorHandler *apperrors.ErrorHandler
	logger       *zap.Logger
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(searcher MovieSearcher, logger *zap.Logger) *MovieHandler {
	return &MovieHandler{
		searcher:     searcher,
		errorHandler: apperrors.NewErrorHandler(logger),
		logger:       logger,
	}
}

// ListMovies handles GET /movies. All query parameters are optional; none at
// all returns the whole catalog. Items keep the store's typed attribute form.
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := queries.SearchMoviesQuery{
		Filter: catalog.Filter{
			Year:       params.Get("year"),
			Title:      params.Get("title"),
			CastMember: params.Get("cast"),
			Genre:      params.Get("genre"),
		},
	}

	h.logger.Info("Received movie search request")

	items, err := h.searcher.Handle(r.Context(), query)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	out, err := attrjson.Items(items)
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewInternalError("failed to encode movies: "+err.Error()))
		return
	}

	// Encode fully before writing so a failure never leaves a partial body.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(out); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewInternalError("failed to encode movies: "+err.Error()))
		return
	}

	h.logger.Debug("Returning movies", zap.Int("count", len(items)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}
