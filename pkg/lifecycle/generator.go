package lifecycle

import (
	"context"

	"github.com/gnames/taxseed/pkg/taxon"
)

// Generator turns a checklist into SQL artifacts.
type Generator interface {
	// Generate reads the checklist and writes the full taxa artifact, the
	// test taxa artifact and the sightings artifact.
	Generate(ctx context.Context) (GenerateReport, error)
}

// GenerateReport summarizes a Generate run.
type GenerateReport struct {
	// Input is the checklist path.
	Input string `json:"input" yaml:"input"`

	// Dialect of generated statements.
	Dialect string `json:"dialect" yaml:"dialect"`

	// Checklist has statistics of reading the checklist.
	Checklist ChecklistStats `json:"checklist" yaml:"checklist"`

	// Artifacts are written files in the order full, test, sightings.
	Artifacts []Artifact `json:"artifacts" yaml:"artifacts"`
}

// ChecklistStats summarizes reading of the checklist.
type ChecklistStats struct {
	// Rows is the number of data rows.
	Rows int `json:"rows" yaml:"rows"`
	// Species is the number of accepted rows.
	Species int `json:"species" yaml:"species"`
	// Skipped rows lack order, family or genus, or are broken.
	Skipped int `json:"skipped" yaml:"skipped"`
	// Unusual rows have a binomial that is not a well-formed species name
	// of their genus.
	Unusual int `json:"unusual" yaml:"unusual"`
	// Duplicates repeat genus and epithet of an earlier row.
	Duplicates int `json:"duplicates" yaml:"duplicates"`
}

// Artifact describes a generated file.
type Artifact struct {
	// Kind is "full", "test" or "sightings".
	Kind string `json:"kind" yaml:"kind"`

	// Path of the file.
	Path string `json:"path" yaml:"path"`

	// Taxa counts taxa by rank, empty for sightings.
	Taxa taxon.Counts `json:"taxa,omitzero" yaml:"taxa,omitempty"`

	// TripSightings and CasualSightings are set for sightings only.
	TripSightings   int `json:"tripSightings,omitempty" yaml:"trip_sightings,omitempty"`
	CasualSightings int `json:"casualSightings,omitempty" yaml:"casual_sightings,omitempty"`

	// Statements is the number of insert statements in the file.
	Statements int `json:"statements" yaml:"statements"`

	// Bytes is the file size.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Checksum is the xxh3 hash of the file content in hex.
	Checksum string `json:"checksum" yaml:"checksum"`
}
