// Package sqlgen renders taxa and sightings as conflict-tolerant SQL
// insert statements and writes whole seed artifacts.
//
// The package only produces text. Writing it somewhere is the caller's
// job.
package sqlgen

import (
	"strconv"
	"strings"
)

// Null is the SQL token for an absent value.
const Null = "NULL"

// Literal renders a string as a single-quoted SQL literal. An empty
// string is rendered as NULL. Embedded single quotes are doubled, no other
// characters are escaped.
func Literal(s string) string {
	if s == "" {
		return Null
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// IntLiteral renders an optional integer. Nil is rendered as NULL.
func IntLiteral(i *int) string {
	if i == nil {
		return Null
	}
	return strconv.Itoa(*i)
}
