package handlers

import (
	"context"
	"errors"
	"testing"

	"movies-backend/application/queries"
	"movies-backend/domain/catalog"
	apperrors "movies-backend/pkg/errors"
	"movies-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockMovieStore is a testify mock of ports.MovieStore
type MockMovieStore struct {
	mock.Mock
}

func (m *MockMovieStore) Scan(ctx context.Context, input catalog.ScanInput) ([]catalog.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func mustItem(t *testing.T, movie catalog.Movie) catalog.Item {
	t.Helper()
	item, err := attributevalue.MarshalMap(movie)
	require.NoError(t, err)
	return item
}

func TestSearchMoviesHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	store := new(MockMovieStore)
	metrics := observability.NewCollector("test")
	matrix := mustItem(t, catalog.Movie{Year: 1999, Title: "The Matrix", Genres: []string{"Action", "Sci-Fi"}})

	expected := catalog.ScanInput{
		TableName:        "Movies",
		FilterExpression: aws.String("#yr = :year"),
		Names:            map[string]string{"#yr": "year"},
		Values:           map[string]types.AttributeValue{":year": &types.AttributeValueMemberN{Value: "1999"}},
	}
	store.On("Scan", ctx, expected).Return([]catalog.Item{matrix}, nil)

	handler := NewSearchMoviesHandler(store, "Movies", metrics, zap.NewNop())

	items, err := handler.Handle(ctx, queries.SearchMoviesQuery{Filter: catalog.Filter{Year: "1999"}})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "The Matrix"}, items[0]["title"])
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.MoviesReturned))
	store.AssertExpectations(t)
}

func TestSearchMoviesHandler_Handle_NoFilterScansEverything(t *testing.T) {
	ctx := context.Background()
	store := new(MockMovieStore)

	store.On("Scan", ctx, catalog.ScanInput{TableName: "Movies"}).Return(nil, nil)

	handler := NewSearchMoviesHandler(store, "Movies", nil, zap.NewNop())

	items, err := handler.Handle(ctx, queries.SearchMoviesQuery{})

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	store.AssertExpectations(t)
}

func TestSearchMoviesHandler_Handle_StoreFailure(t *testing.T) {
	ctx := context.Background()
	store := new(MockMovieStore)
	scanErr := apperrors.NewScanError("ProvisionedThroughputExceededException: slow down", nil)

	store.On("Scan", ctx, mock.Anything).Return(nil, scanErr)

	handler := NewSearchMoviesHandler(store, "Movies", nil, zap.NewNop())

	items, err := handler.Handle(ctx, queries.SearchMoviesQuery{Filter: catalog.Filter{Genre: "Drama"}})

	require.Error(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NotEmpty(t, apperrors.Message(err))
	// one attempt only
	store.AssertNumberOfCalls(t, "Scan", 1)
}

func TestSearchMoviesHandler_Handle_UnclassifiedFailure(t *testing.T) {
	ctx := context.Background()
	store := new(MockMovieStore)

	store.On("Scan", ctx, mock.Anything).Return(nil, errors.New("unexpected"))

	handler := NewSearchMoviesHandler(store, "Movies", nil, zap.NewNop())

	_, err := handler.Handle(ctx, queries.SearchMoviesQuery{})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeScan))
	assert.Equal(t, "unexpected", apperrors.Message(err))
}

func TestSearchMoviesHandler_Handle_InvalidYear(t *testing.T) {
	store := new(MockMovieStore)
	handler := NewSearchMoviesHandler(store, "Movies", nil, zap.NewNop())

	items, err := handler.Handle(context.Background(), queries.SearchMoviesQuery{Filter: catalog.Filter{Year: "nineteen"}})

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidFilter(err))
	assert.Empty(t, items)
	store.AssertNotCalled(t, "Scan", mock.Anything, mock.Anything)
}

func TestSearchMoviesHandler_Handle_TrimsYear(t *testing.T) {
	ctx := context.Background()
	store := new(MockMovieStore)

	store.On("Scan", ctx, mock.MatchedBy(func(in catalog.ScanInput) bool {
		n, ok := in.Values[":year"].(*types.AttributeValueMemberN)
		return ok && n.Value == "2001"
	})).Return([]catalog.Item{}, nil)

	handler := NewSearchMoviesHandler(store, "Movies", nil, zap.NewNop())

	_, err := handler.Handle(ctx, queries.SearchMoviesQuery{Filter: catalog.Filter{Year: " 2001 "}})

	require.NoError(t, err)
	store.AssertExpectations(t)
}
