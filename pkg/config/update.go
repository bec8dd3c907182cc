package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Load.CreateSchema, Load.Files).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Input.Path
	if s != "" {
		res = append(res, OptInputPath(s))
	}
	s = c.Input.Kingdom
	if s != "" {
		res = append(res, OptInputKingdom(s))
	}
	s = c.Input.Phylum
	if s != "" {
		res = append(res, OptInputPhylum(s))
	}
	s = c.Input.Class
	if s != "" {
		res = append(res, OptInputClass(s))
	}
	s = c.Input.Source
	if s != "" {
		res = append(res, OptInputSource(s))
	}

	s = c.Output.Dir
	if s != "" {
		res = append(res, OptOutputDir(s))
	}
	s = c.Output.FullFile
	if s != "" {
		res = append(res, OptOutputFullFile(s))
	}
	s = c.Output.TestFile
	if s != "" {
		res = append(res, OptOutputTestFile(s))
	}
	s = c.Output.SightingsFile
	if s != "" {
		res = append(res, OptOutputSightingsFile(s))
	}
	i = c.Output.TestSize
	if i > 0 {
		res = append(res, OptOutputTestSize(i))
	}
	s = c.Output.Dialect
	if s != "" {
		res = append(res, OptOutputDialect(s))
	}

	i = c.Sample.PerFamily
	if i > 0 {
		res = append(res, OptSamplePerFamily(i))
	}
	i = c.Sample.MaxSpecies
	if i > 0 {
		res = append(res, OptSampleMaxSpecies(i))
	}
	i = c.Sample.TripRecords
	if i >= 0 {
		res = append(res, OptSampleTripRecords(i))
	}
	i = c.Sample.TripSize
	if i > 0 {
		res = append(res, OptSampleTripSize(i))
	}
	i = c.Sample.CasualRecords
	if i >= 0 {
		res = append(res, OptSampleCasualRecords(i))
	}

	s = c.Database.Engine
	if s != "" {
		res = append(res, OptDatabaseEngine(s))
	}
	s = c.Database.Path
	if s != "" {
		res = append(res, OptDatabasePath(s))
	}
	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

// isValidCount accepts zero, it turns off a block of generated records.
func isValidCount(name string, i int) bool {
	res := i >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	dialects := map[string]struct{}{"sqlite": s, "postgres": s}
	data := map[string]map[string]struct{}{
		"Output.Dialect":  dialects,
		"Database.Engine": dialects,
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stdout": s, "stderr": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		lines = append(lines, fmt.Sprintf("  * %s", v))
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
