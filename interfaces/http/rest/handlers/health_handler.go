package handlers

import (
	"context"
	"net/http"
	"time"

	apperrors "movies-backend/pkg/errors"

	"go.uber.org/zap"
)

// ReadinessChecker reports whether the service's dependencies are usable
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

const readinessTimeout = 5 * time.Second

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	readiness    ReadinessChecker
	errorHandler *apperrors.ErrorHandler
	logger       *zap.Logger
}

// NewHealthHandler creates a new health handler. readiness may be nil, in
// which case the service is always ready.
func NewHealthHandler(readiness ReadinessChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		readiness:    readiness,
		errorHandler: apperrors.NewErrorHandler(logger),
		logger:       logger,
	}
}

// Health handles GET /health. It never touches the store.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.readiness != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := h.readiness.Ready(ctx); err != nil {
			h.errorHandler.Handle(w, r, apperrors.NewUnavailableError("movie store").WithCause(err))
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
