package sqlgen

import (
	"fmt"
	"strings"

	"github.com/gnames/taxseed/pkg/sighting"
	"github.com/gnames/taxseed/pkg/taxon"
)

// Dialect determines how insert-or-ignore is expressed.
type Dialect string

const (
	// SQLite uses INSERT OR IGNORE.
	SQLite Dialect = "sqlite"
	// Postgres uses INSERT ... ON CONFLICT DO NOTHING.
	Postgres Dialect = "postgres"
)

// Emitter renders insert statements for one SQL dialect.
type Emitter struct {
	dialect Dialect
}

// New creates an Emitter. Unknown dialects fall back to SQLite.
func New(d Dialect) Emitter {
	if d != Postgres {
		d = SQLite
	}
	return Emitter{dialect: d}
}

// Dialect returns the dialect of the emitter.
func (e Emitter) Dialect() Dialect {
	return e.dialect
}

const taxonColumns = `rank, kingdom, phylum, class, "order", family, ` +
	`subfamily, genus, species_epithet, common_name`

const sightingColumns = `trip_id, taxon_id, kingdom, phylum, class, ` +
	`"order", family, subfamily, genus, species_epithet, common_name,
    notes, media_path, date, location`

// Taxon renders an insert statement for a taxon. The statement is skipped
// by the database when a taxon with the same natural key already exists.
func (e Emitter) Taxon(t taxon.Taxon) string {
	values := []string{
		Literal(t.Rank.String()),
		Literal(t.Kingdom),
		Literal(t.Phylum),
		Literal(t.Class),
		Literal(t.Order),
		Literal(t.Family),
		Literal(t.Subfamily),
		Literal(t.Genus),
		Literal(t.SpeciesEpithet),
		Literal(t.CommonName),
	}
	return e.insert("taxa", taxonColumns, strings.Join(values, ",\n    "))
}

// Sighting renders an insert statement for a sighting. The taxon_id is
// not known at generation time, so it is resolved by a sub-select on
// genus and species epithet when the statement runs.
func (e Emitter) Sighting(s sighting.Sighting) string {
	sp := s.Species
	values := fmt.Sprintf(`%s,
    %s,
    %s, %s, %s, %s, %s,
    %s, %s, %s, %s,
    %s, %s, %s, %s`,
		IntLiteral(s.TripID),
		TaxonLookup(sp),
		Literal(sp.Kingdom), Literal(sp.Phylum), Literal(sp.Class),
		Literal(sp.Order), Literal(sp.Family),
		Literal(sp.Subfamily), Literal(sp.Genus),
		Literal(sp.SpeciesEpithet), Literal(sp.CommonName),
		Literal(s.Notes), Literal(s.MediaPath), Literal(s.Date),
		Literal(s.Location),
	)
	return e.insert("sightings", sightingColumns, values)
}

// TaxonLookup returns a scalar sub-select that finds the id of a species
// by its genus and species epithet. A binomial listed under several
// families resolves to the earliest inserted species.
func TaxonLookup(sp taxon.Taxon) string {
	return fmt.Sprintf(
		"(SELECT id FROM taxa WHERE rank='species' AND genus=%s "+
			"AND species_epithet=%s ORDER BY id LIMIT 1)",
		Literal(sp.Genus), Literal(sp.SpeciesEpithet),
	)
}

func (e Emitter) insert(table, columns, values string) string {
	var verb, tail string
	switch e.dialect {
	case Postgres:
		verb = "INSERT INTO"
		tail = " ON CONFLICT DO NOTHING"
	default:
		verb = "INSERT OR IGNORE INTO"
	}
	return fmt.Sprintf(`%s %s (
    %s
) VALUES (
    %s
)%s;`, verb, table, columns, values, tail)
}
