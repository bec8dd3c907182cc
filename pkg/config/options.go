package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputPath sets path to the CSV species checklist.
func OptInputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Path", s) {
			c.Input.Path = s
		}
	}
}

// OptInputKingdom sets kingdom shared by all species of the checklist.
func OptInputKingdom(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Kingdom", s) {
			c.Input.Kingdom = s
		}
	}
}

// OptInputPhylum sets phylum shared by all species of the checklist.
func OptInputPhylum(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Phylum", s) {
			c.Input.Phylum = s
		}
	}
}

// OptInputClass sets class shared by all species of the checklist.
func OptInputClass(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Class", s) {
			c.Input.Class = s
		}
	}
}

// OptInputSource sets the checklist name used in headers of generated files.
func OptInputSource(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Source", s) {
			c.Input.Source = s
		}
	}
}

// OptOutputDir sets the directory for generated artifacts.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Dir", s) {
			c.Output.Dir = s
		}
	}
}

// OptOutputFullFile sets the file name of the full taxa artifact.
func OptOutputFullFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output FullFile", s) {
			c.Output.FullFile = s
		}
	}
}

// OptOutputTestFile sets the file name of the test taxa artifact.
func OptOutputTestFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output TestFile", s) {
			c.Output.TestFile = s
		}
	}
}

// OptOutputSightingsFile sets the file name of the sightings artifact.
func OptOutputSightingsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output SightingsFile", s) {
			c.Output.SightingsFile = s
		}
	}
}

// OptDatabasePath sets the SQLite database file.
func OptDatabasePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Path", s) {
			c.Database.Path = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptOutputTestSize sets the number of first species used for the test artifact
// and for sightings.
func OptOutputTestSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Output TestSize", i) {
			c.Output.TestSize = i
		}
	}
}

// OptSamplePerFamily sets how many first species of a family can get sightings.
func OptSamplePerFamily(i int) Option {
	return func(c *Config) {
		if isValidInt("Sample PerFamily", i) {
			c.Sample.PerFamily = i
		}
	}
}

// OptSampleMaxSpecies sets the maximum number of species that get sightings.
func OptSampleMaxSpecies(i int) Option {
	return func(c *Config) {
		if isValidInt("Sample MaxSpecies", i) {
			c.Sample.MaxSpecies = i
		}
	}
}

// OptSampleTripRecords sets the number of sightings made during trips.
func OptSampleTripRecords(i int) Option {
	return func(c *Config) {
		if isValidCount("Sample TripRecords", i) {
			c.Sample.TripRecords = i
		}
	}
}

// OptSampleTripSize sets the number of consecutive sightings sharing a trip.
func OptSampleTripSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Sample TripSize", i) {
			c.Sample.TripSize = i
		}
	}
}

// OptSampleCasualRecords sets the number of sightings without a trip.
func OptSampleCasualRecords(i int) Option {
	return func(c *Config) {
		if isValidCount("Sample CasualRecords", i) {
			c.Sample.CasualRecords = i
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptJobsNumber sets the number of concurrent jobs.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptOutputDialect sets the SQL dialect of generated inserts.
// Valid values: "sqlite", "postgres".
func OptOutputDialect(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Dialect", s) {
			c.Output.Dialect = s
		}
	}
}

// OptDatabaseEngine sets the database engine used by the load command.
// Valid values: "sqlite", "postgres".
func OptDatabaseEngine(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.Engine", s) {
			c.Database.Engine = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptLoadCreateSchema sets whether the load command creates tables
// before loading artifacts.
// Runtime-only field - not in ToOptions().
func OptLoadCreateSchema(b bool) Option {
	return func(c *Config) {
		c.Load.CreateSchema = b
	}
}

// OptLoadFiles sets artifacts the load command executes, in order.
// Empty slice keeps the default artifacts.
// Runtime-only field - not in ToOptions().
func OptLoadFiles(ss []string) Option {
	return func(c *Config) {
		var files []string
		for _, v := range ss {
			v = strings.TrimSpace(v)
			if v != "" {
				files = append(files, v)
			}
		}
		if len(files) > 0 {
			c.Load.Files = files
		}
	}
}

// OptHomeDir sets the home directory used to find config and log
// directories.
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}
