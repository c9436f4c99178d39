package di

import (
	"context"
	"fmt"

	"movies-backend/application/ports"
	queryhandlers "movies-backend/application/queries/handlers"
	"movies-backend/domain/catalog"
	"movies-backend/infrastructure/config"
	"movies-backend/infrastructure/persistence/dynamodb"
	"movies-backend/infrastructure/persistence/schema"
	"movies-backend/interfaces/http/rest"
	"movies-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const (
	// metricsNamespace prefixes every exported metric.
	metricsNamespace = "movies"
	serviceName      = "movies-backend"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

// ProvideTracer creates the X-Ray tracer, inert unless ENABLE_TRACING is set
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(serviceName, cfg.EnableTracing)
}

// ProvideAWSConfig creates AWS configuration with the store's static
// credentials, per-request timeout and attempt limit.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config, tracer *observability.Tracer) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		),
		awsconfig.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(cfg.StoreTimeout)),
		awsconfig.WithRetryMaxAttempts(cfg.StoreMaxAttempts),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	tracer.InstrumentAWS(&awsCfg)
	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client pointed at the configured endpoint
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
	})
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector(metricsNamespace)
}

// ProvideStoreClient creates the store client shared by every component
func ProvideStoreClient(
	client *awsdynamodb.Client,
	cfg *config.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) *dynamodb.StoreClient {
	return dynamodb.NewStoreClient(client, cfg.TableWaitTimeout, metrics, logger)
}

// ProvideMovieStore returns the store used for searches, behind a circuit
// breaker when enabled.
func ProvideMovieStore(store *dynamodb.StoreClient, cfg *config.Config, logger *zap.Logger) ports.MovieStore {
	if !cfg.EnableCircuitBreaker {
		return store
	}
	return dynamodb.NewCircuitBreakerStore(
		store,
		dynamodb.DefaultCircuitBreakerConfig("movie-store"),
		logger,
	)
}

// ProvideTableManager exposes the store client's table operations
func ProvideTableManager(store *dynamodb.StoreClient) ports.TableManager {
	return store
}

// ProvideBootstrapper creates the schema bootstrapper for the movies table
func ProvideBootstrapper(
	tables ports.TableManager,
	cfg *config.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) *schema.Bootstrapper {
	return schema.NewBootstrapper(tables, catalog.MoviesTable(cfg.TableName), metrics, logger)
}

// ProvideSearchMoviesHandler creates the movie search handler
func ProvideSearchMoviesHandler(
	store ports.MovieStore,
	cfg *config.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) *queryhandlers.SearchMoviesHandler {
	return queryhandlers.NewSearchMoviesHandler(store, cfg.TableName, metrics, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	search *queryhandlers.SearchMoviesHandler,
	bootstrapper *schema.Bootstrapper,
	metrics *observability.Collector,
	tracer *observability.Tracer,
	cfg *config.Config,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(search, bootstrapper, metrics, tracer, rest.Options{
		EnableCORS:    cfg.EnableCORS,
		EnableMetrics: cfg.EnableMetrics,
	}, logger)
}
