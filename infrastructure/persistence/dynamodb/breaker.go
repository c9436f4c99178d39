package dynamodb

import (
	"context"
	"errors"
	"time"

	"movies-backend/application/ports"
	"movies-backend/domain/catalog"
	apperrors "movies-backend/pkg/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// CircuitBreakerConfig holds configuration for the scan circuit breaker
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultCircuitBreakerConfig returns a default configuration for circuit breaker
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      5,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// CircuitBreakerStore stops sending scans to a store that keeps failing to
// answer. Only connectivity failures count against the breaker; a store that
// rejects a query is still reachable. It never retries.
type CircuitBreakerStore struct {
	next ports.MovieStore
	cb   *gobreaker.CircuitBreaker
}

var _ ports.MovieStore = (*CircuitBreakerStore)(nil)

// NewCircuitBreakerStore wraps next with a circuit breaker.
func NewCircuitBreakerStore(next ports.MovieStore, config CircuitBreakerConfig, logger *zap.Logger) *CircuitBreakerStore {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < config.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= config.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return !apperrors.IsType(err, apperrors.ErrorTypeConnectivity)
		},
	})

	return &CircuitBreakerStore{next: next, cb: cb}
}

// Scan runs the scan through the breaker.
func (s *CircuitBreakerStore) Scan(ctx context.Context, input catalog.ScanInput) ([]catalog.Item, error) {
	out, err := s.cb.Execute(func() (interface{}, error) {
		return s.next.Scan(ctx, input)
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return nil, apperrors.NewScanError("store temporarily unavailable: "+err.Error(), err)
		default:
			return nil, err
		}
	}
	items, _ := out.([]catalog.Item)
	return items, nil
}

// State reports the breaker state, mostly for tests and diagnostics.
func (s *CircuitBreakerStore) State() gobreaker.State {
	return s.cb.State()
}
