package lifecycle

import (
	"context"
)

// Loader executes SQL artifacts against a database.
type Loader interface {
	// Load runs every statement of the given artifacts in order, one
	// transaction per artifact.
	Load(ctx context.Context, files []string) (LoadReport, error)
}

// LoadReport summarizes a Load run.
type LoadReport struct {
	// Engine is the database engine.
	Engine string `json:"engine" yaml:"engine"`

	// Files are loaded artifacts with their statement numbers.
	Files []LoadedFile `json:"files" yaml:"files"`

	// Taxa and Sightings are row counts after loading.
	Taxa      int `json:"taxa" yaml:"taxa"`
	Sightings int `json:"sightings" yaml:"sightings"`

	// UnresolvedSightings is the number of sightings whose species was
	// not found in taxa.
	UnresolvedSightings int `json:"unresolvedSightings" yaml:"unresolved_sightings"`
}

// LoadedFile describes one executed artifact.
type LoadedFile struct {
	Path       string `json:"path" yaml:"path"`
	Statements int    `json:"statements" yaml:"statements"`
	// Inserted is the number of rows actually inserted, statements that
	// hit an existing natural key insert nothing.
	Inserted int64 `json:"inserted" yaml:"inserted"`
}
