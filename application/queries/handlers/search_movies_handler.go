package handlers

import (
	"context"

	"movies-backend/application/ports"
	"movies-backend/application/queries"
	"movies-backend/domain/catalog"
	apperrors "movies-backend/pkg/errors"
	"movies-backend/pkg/observability"

	"go.uber.org/zap"
)

// SearchMoviesHandler answers movie searches with a filtered table scan
type SearchMoviesHandler struct {
	store     ports.MovieStore
	tableName string
	metrics   *observability.Collector
	logger    *zap.Logger
}

// NewSearchMoviesHandler creates a new search handler. metrics may be nil.
func NewSearchMoviesHandler(
	store ports.MovieStore,
	tableName string,
	metrics *observability.Collector,
	logger *zap.Logger,
) *SearchMoviesHandler {
	return &SearchMoviesHandler{
		store:     store,
		tableName: tableName,
		metrics:   metrics,
		logger:    logger,
	}
}

// Handle executes the search. On failure it returns an empty, non-nil result
// together with the error; store failures are never retried.
func (h *SearchMoviesHandler) Handle(ctx context.Context, query queries.SearchMoviesQuery) ([]catalog.Item, error) {
	filter := query.Filter.Normalize()

	h.logger.Info("Retrieving movies",
		zap.String("table", h.tableName),
		zap.String("year", filter.Year),
		zap.String("title", filter.Title),
		zap.String("cast", filter.CastMember),
		zap.String("genre", filter.Genre),
	)

	q := queries.SearchMoviesQuery{Filter: filter}
	if err := q.Validate(); err != nil {
		return []catalog.Item{}, err
	}

	expr, err := queries.BuildExpression(filter)
	if err != nil {
		return []catalog.Item{}, err
	}

	items, err := h.store.Scan(ctx, catalog.ScanInput{
		TableName:        h.tableName,
		FilterExpression: expr.Filter,
		Names:            expr.Names,
		Values:           expr.Values,
	})
	if err != nil {
		if apperrors.GetAppError(err) == nil {
			err = apperrors.NewScanError(err.Error(), err)
		}
		h.logger.Error("Error scanning movies table",
			zap.String("table", h.tableName),
			zap.Error(err),
		)
		return []catalog.Item{}, err
	}
	if items == nil {
		items = []catalog.Item{}
	}

	if h.metrics != nil {
		h.metrics.RecordSearch(len(items))
	}
	h.logger.Debug("Retrieved movies", zap.Int("count", len(items)))
	return items, nil
}
