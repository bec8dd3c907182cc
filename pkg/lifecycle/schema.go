// Package lifecycle defines the stages of taxseed: generating SQL
// artifacts from a checklist, creating destination tables and loading
// artifacts into a database.
package lifecycle

import (
	"context"
)

// SchemaManager creates destination tables for generated artifacts.
// Creation is idempotent, existing tables and rows are kept.
type SchemaManager interface {
	// Create creates taxa and sightings tables with their natural key
	// indexes.
	Create(ctx context.Context) error
}
