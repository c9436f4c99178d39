package schema

import (
	"context"
	"fmt"

	"movies-backend/application/ports"
	"movies-backend/domain/catalog"
	"movies-backend/pkg/observability"

	"go.uber.org/zap"
)

// Bootstrapper makes sure the movie table exists before the service starts
// taking traffic. The table is created once and never altered afterwards.
type Bootstrapper struct {
	tables  ports.TableManager
	spec    catalog.TableSpec
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewBootstrapper creates a bootstrapper for the given table layout.
// metrics may be nil.
func NewBootstrapper(tables ports.TableManager, spec catalog.TableSpec, metrics *observability.Collector, logger *zap.Logger) *Bootstrapper {
	return &Bootstrapper{
		tables:  tables,
		spec:    spec,
		metrics: metrics,
		logger:  logger,
	}
}

// EnsureTable creates the table if it is absent and waits until it is
// active. It reports whether a table was created. Running it again once the
// table exists is a no-op.
func (b *Bootstrapper) EnsureTable(ctx context.Context) (bool, error) {
	names, err := b.tables.ListTableNames(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list tables: %w", err)
	}

	if _, ok := names[b.spec.Name]; ok {
		b.logger.Info("Table already exists", zap.String("table", b.spec.Name))
		return false, nil
	}

	b.logger.Info("Table does not exist, creating",
		zap.String("table", b.spec.Name),
		zap.String("partitionKey", b.spec.PartitionKey),
		zap.String("sortKey", b.spec.SortKey),
	)

	if err := b.tables.CreateTable(ctx, b.spec); err != nil {
		return false, fmt.Errorf("failed to create table %s: %w", b.spec.Name, err)
	}

	if b.metrics != nil {
		b.metrics.RecordTableCreated()
	}
	b.logger.Info("Created table",
		zap.String("table", b.spec.Name),
		zap.Int64("readCapacityUnits", b.spec.ReadCapacity),
		zap.Int64("writeCapacityUnits", b.spec.WriteCapacity),
	)
	return true, nil
}

// Ready reports whether the table is visible in the store. It is the check
// behind the readiness endpoint.
func (b *Bootstrapper) Ready(ctx context.Context) error {
	names, err := b.tables.ListTableNames(ctx)
	if err != nil {
		return err
	}
	if _, ok := names[b.spec.Name]; !ok {
		return fmt.Errorf("table %s does not exist", b.spec.Name)
	}
	return nil
}
