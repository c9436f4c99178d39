package dynamodb

import (
	"context"
	"time"

	"movies-backend/application/ports"
	"movies-backend/domain/catalog"
	"movies-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// DynamoDBAPI is the subset of *dynamodb.Client the store relies on.
type DynamoDBAPI interface {
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var (
	_ DynamoDBAPI        = (*dynamodb.Client)(nil)
	_ ports.MovieStore   = (*StoreClient)(nil)
	_ ports.TableManager = (*StoreClient)(nil)
)

// Waiter delays used while a new table is CREATING.
const (
	tableWaitMinDelay = 1 * time.Second
	tableWaitMaxDelay = 20 * time.Second
)

// StoreClient is the single configured handle to the movie store.
type StoreClient struct {
	api         DynamoDBAPI
	logger      *zap.Logger
	metrics     *observability.Collector
	waitTimeout time.Duration
}

// NewStoreClient creates a store client. metrics may be nil.
func NewStoreClient(api DynamoDBAPI, waitTimeout time.Duration, metrics *observability.Collector, logger *zap.Logger) *StoreClient {
	return &StoreClient{
		api:         api,
		logger:      logger,
		metrics:     metrics,
		waitTimeout: waitTimeout,
	}
}

// ListTableNames returns every table visible to the configured credentials.
func (c *StoreClient) ListTableNames(ctx context.Context) (map[string]struct{}, error) {
	start := time.Now()
	names := make(map[string]struct{})

	paginator := dynamodb.NewListTablesPaginator(c.api, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			c.record("ListTables", "", err, start)
			return nil, classifyError("ListTables", "", err)
		}
		for _, name := range page.TableNames {
			names[name] = struct{}{}
		}
	}

	c.record("ListTables", "", nil, start)
	return names, nil
}

// CreateTable creates a table with a composite key and provisioned
// throughput, then blocks until DynamoDB reports it ACTIVE.
func (c *StoreClient) CreateTable(ctx context.Context, spec catalog.TableSpec) error {
	start := time.Now()

	input := &dynamodb.CreateTableInput{
		TableName: aws.String(spec.Name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(spec.PartitionKey), AttributeType: spec.PartitionKeyType},
			{AttributeName: aws.String(spec.SortKey), AttributeType: spec.SortKeyType},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.PartitionKey), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(spec.SortKey), KeyType: types.KeyTypeRange},
		},
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(spec.ReadCapacity),
			WriteCapacityUnits: aws.Int64(spec.WriteCapacity),
		},
	}

	out, err := c.api.CreateTable(ctx, input)
	if err != nil {
		c.record("CreateTable", spec.Name, err, start)
		return classifyError("CreateTable", spec.Name, err)
	}
	if out.TableDescription != nil {
		c.logger.Info("Table creation requested",
			zap.String("table", spec.Name),
			zap.String("status", string(out.TableDescription.TableStatus)),
		)
	}

	waiter := dynamodb.NewTableExistsWaiter(c.api, func(o *dynamodb.TableExistsWaiterOptions) {
		o.MinDelay = tableWaitMinDelay
		o.MaxDelay = tableWaitMaxDelay
	})
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)}, c.waitTimeout)
	c.record("CreateTable", spec.Name, err, start)
	if err != nil {
		return waitError(spec.Name, err)
	}

	c.logger.Info("Table is active",
		zap.String("table", spec.Name),
		zap.Int64("readCapacityUnits", spec.ReadCapacity),
		zap.Int64("writeCapacityUnits", spec.WriteCapacity),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// Scan reads every item of the table that matches the optional filter,
// following LastEvaluatedKey until the table is exhausted.
func (c *StoreClient) Scan(ctx context.Context, in catalog.ScanInput) ([]catalog.Item, error) {
	start := time.Now()

	input := &dynamodb.ScanInput{
		TableName:        aws.String(in.TableName),
		FilterExpression: in.FilterExpression,
	}
	if len(in.Names) > 0 {
		input.ExpressionAttributeNames = in.Names
	}
	if len(in.Values) > 0 {
		input.ExpressionAttributeValues = in.Values
	}

	items := make([]catalog.Item, 0)
	pages := 0
	paginator := dynamodb.NewScanPaginator(c.api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			c.record("Scan", in.TableName, err, start)
			return nil, classifyError("Scan", in.TableName, err)
		}
		pages++
		items = append(items, page.Items...)
	}

	c.record("Scan", in.TableName, nil, start)
	c.logger.Debug("Scan completed",
		zap.String("table", in.TableName),
		zap.Int("pages", pages),
		zap.Int("items", len(items)),
		zap.Duration("duration", time.Since(start)),
	)
	return items, nil
}

func (c *StoreClient) record(operation, table string, err error, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordDBOperation(operation, table, err, time.Since(start))
}
