// Package config provides configuration management for taxseed.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: path, kingdom, phylum, class
//   - Output: dir, dialect, test_size, file names
//   - Sample: per_family, max_species, trip_records, trip_size,
//     casual_records
//   - Database: engine, path, host, port, user, password, database, ssl_mode
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Load.CreateSchema, Load.Files (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use TAXSEED_ prefix with underscores for nesting:
//
//	TAXSEED_INPUT_PATH=./NACC_list_species.csv
//	TAXSEED_OUTPUT_DIR=./seeds
//	TAXSEED_DATABASE_ENGINE=sqlite
//	TAXSEED_LOG_LEVEL=info
package config

import (
	"runtime"

	"github.com/gnames/taxseed/pkg/sighting"
)

// Config represents the complete taxseed configuration.
type Config struct {
	// Input describes the species checklist.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Output describes generated SQL artifacts.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Sample controls synthesized sightings.
	Sample SampleConfig `mapstructure:"sample" yaml:"sample"`

	// Database contains connection settings used by the load command.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Load contains settings specific to the load command.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber limits how many artifacts are generated concurrently.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// InputConfig describes the checklist file and the higher classification
// shared by all of its species.
type InputConfig struct {
	// Path to the CSV checklist, one row per species.
	Path string `mapstructure:"path" yaml:"path"`

	// Kingdom, Phylum and Class are not read from the checklist, they are
	// the same for every species.
	Kingdom string `mapstructure:"kingdom" yaml:"kingdom"`
	Phylum  string `mapstructure:"phylum"  yaml:"phylum"`
	Class   string `mapstructure:"class"   yaml:"class"`

	// Source is a human-readable name of the checklist used in headers
	// of generated files.
	Source string `mapstructure:"source" yaml:"source"`
}

// OutputConfig describes generated artifacts.
type OutputConfig struct {
	// Dir is where artifacts are written.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Dialect of insert statements: "sqlite" or "postgres".
	Dialect string `mapstructure:"dialect" yaml:"dialect"`

	// TestSize is the number of first species used for the test artifact
	// and for sightings.
	TestSize int `mapstructure:"test_size" yaml:"test_size"`

	FullFile      string `mapstructure:"full_file"      yaml:"full_file"`
	TestFile      string `mapstructure:"test_file"      yaml:"test_file"`
	SightingsFile string `mapstructure:"sightings_file" yaml:"sightings_file"`
}

// SampleConfig controls which species get sightings and how sightings are
// grouped.
type SampleConfig struct {
	// PerFamily is how many first species of each family are sampled.
	PerFamily int `mapstructure:"per_family" yaml:"per_family"`

	// MaxSpecies is the size limit of the sample.
	MaxSpecies int `mapstructure:"max_species" yaml:"max_species"`

	// TripRecords is the number of first sampled species observed on trips.
	TripRecords int `mapstructure:"trip_records" yaml:"trip_records"`

	// TripSize is the number of consecutive sightings per trip.
	TripSize int `mapstructure:"trip_size" yaml:"trip_size"`

	// CasualRecords is the number of last sampled species observed
	// without a trip.
	CasualRecords int `mapstructure:"casual_records" yaml:"casual_records"`
}

// DatabaseConfig contains connection parameters for the load command.
type DatabaseConfig struct {
	// Engine is "sqlite" or "postgres".
	Engine string `mapstructure:"engine" yaml:"engine"`

	// Path is the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// LoadConfig contains settings specific to the load command.
type LoadConfig struct {
	// CreateSchema creates taxa and sightings tables before loading.
	CreateSchema bool `mapstructure:"create_schema" yaml:"create_schema"`

	// Files are artifacts to load, in order. Empty means the test taxa
	// artifact followed by the sightings artifact from Output.Dir.
	Files []string `mapstructure:"files" yaml:"files"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	plan := sighting.DefaultPlan()
	res := &Config{
		Input: InputConfig{
			Path:    "NACC_list_species.csv",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Class:   "Aves",
			Source:  "NACC bird species list",
		},
		Output: OutputConfig{
			Dir:           ".",
			Dialect:       "sqlite",
			TestSize:      100,
			FullFile:      "seed_taxa_full.sql",
			TestFile:      "seed_taxa_test.sql",
			SightingsFile: "seed_sightings.sql",
		},
		Sample: SampleConfig{
			PerFamily:     2,
			MaxSpecies:    16,
			TripRecords:   plan.TripRecords,
			TripSize:      plan.TripSize,
			CasualRecords: plan.CasualRecords,
		},
		Database: DatabaseConfig{
			Engine:   "sqlite",
			Path:     "taxseed.db",
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "taxseed",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
