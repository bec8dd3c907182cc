package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %q %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// coalesce wraps nullable columns so that NULLs compare equal inside
// unique indexes.
func coalesce(cols ...string) string {
	res := make([]string, len(cols))
	for i, v := range cols {
		res[i] = fmt.Sprintf("COALESCE(%q, '')", v)
	}
	return strings.Join(res, ", ")
}

func (t Taxon) TableDDL() string {
	return generateDDL(t, t.TableName())
}

// IndexDDL returns indexes of taxa. The unique index is the natural key
// of a taxon, it makes insert-or-ignore statements idempotent.
func (t Taxon) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS uq_taxa_natural_key ON taxa (" +
			`"rank", "kingdom", ` +
			coalesce("phylum", "class", "order", "family", "subfamily",
				"genus", "species_epithet") + ")",
		"CREATE INDEX IF NOT EXISTS idx_taxa_genus_epithet " +
			`ON taxa ("genus", "species_epithet")`,
	}
}

func (s Sighting) TableDDL() string {
	return generateDDL(s, s.TableName())
}

// IndexDDL returns indexes of sightings. A sighting is identified by its
// trip, species, date and location.
func (s Sighting) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS uq_sightings_natural_key " +
			`ON sightings (COALESCE("trip_id", 0), ` +
			coalesce("genus", "species_epithet", "date", "location") + ")",
		`CREATE INDEX IF NOT EXISTS idx_sightings_taxon ON sightings ("taxon_id")`,
	}
}
