package di

import (
	queryhandlers "movies-backend/application/queries/handlers"
	"movies-backend/infrastructure/config"
	"movies-backend/infrastructure/persistence/dynamodb"
	"movies-backend/infrastructure/persistence/schema"
	"movies-backend/interfaces/http/rest"
	"movies-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Metrics       *observability.Collector
	Store         *dynamodb.StoreClient
	Bootstrapper  *schema.Bootstrapper
	SearchHandler *queryhandlers.SearchMoviesHandler
	Router        *rest.Router
}
