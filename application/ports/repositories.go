package ports

import (
	"context"

	"movies-backend/domain/catalog"
)

// MovieStore executes read-only scans against the movie table.
// Implementations are safe for concurrent use.
type MovieStore interface {
	Scan(ctx context.Context, input catalog.ScanInput) ([]catalog.Item, error)
}

// TableManager lists and creates tables. It is used once at startup and by
// the readiness probe.
type TableManager interface {
	ListTableNames(ctx context.Context) (map[string]struct{}, error)
	CreateTable(ctx context.Context, spec catalog.TableSpec) error
}
