package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movies-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("Should generate request ID when not provided", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/movies", nil)
		w := httptest.NewRecorder()

		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("Should use provided request ID", func(t *testing.T) {
		expectedID := "test-request-id"
		req := httptest.NewRequest("GET", "/movies", nil)
		req.Header.Set(RequestIDHeader, expectedID)
		w := httptest.NewRecorder()

		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, expectedID, GetRequestID(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		handler.ServeHTTP(w, req)

		assert.Equal(t, expectedID, w.Header().Get(RequestIDHeader))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest("GET", "/movies?year=1999", nil)
	req.Header.Set(RequestIDHeader, "abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("HTTP Request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/movies", fields["path"])
		assert.Equal(t, "year=1999", fields["query"])
		assert.EqualValues(t, http.StatusTeapot, fields["status"])
		assert.Equal(t, "abc", fields["requestID"])
	}
}

func TestMetricsMiddleware(t *testing.T) {
	collector := observability.NewCollector("test")

	router := chi.NewRouter()
	router.Use(Metrics(collector))
	router.Get("/movies", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/movies?title=x", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/movies", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "/movies", "200")))
}

func TestMetricsMiddleware_UnmatchedPathsShareOneSeries(t *testing.T) {
	collector := observability.NewCollector("test")

	router := chi.NewRouter()
	router.Use(Metrics(collector))
	router.Get("/movies", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 50; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", fmt.Sprintf("/junk/%d", i), nil))
	}

	assert.Equal(t, 1, testutil.CollectAndCount(collector.HTTPRequests))
	assert.Equal(t, float64(50), testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
