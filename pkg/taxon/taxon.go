// Package taxon derives a normalized classification hierarchy from a flat
// species checklist.
//
// This is a pure package: no file system, no database. Every optional
// column is a plain string where the empty value means NULL.
package taxon

import (
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Rank is a level of the classification hierarchy supported by taxseed.
type Rank string

const (
	Order     Rank = "order"
	Family    Rank = "family"
	Subfamily Rank = "subfamily"
	Genus     Rank = "genus"
	Species   Rank = "species"
)

// String implements fmt.Stringer.
func (r Rank) String() string {
	return string(r)
}

// SpeciesRow is one species of the input checklist after constants
// (kingdom, phylum, class) were applied and the epithet was derived.
type SpeciesRow struct {
	Kingdom        string
	Phylum         string
	Class          string
	Order          string
	Family         string
	Subfamily      string
	Genus          string
	Binomial       string
	SpeciesEpithet string
	CommonName     string
}

// Taxon is a node of the classification hierarchy. Columns below its
// rank are empty.
type Taxon struct {
	Rank           Rank
	Kingdom        string
	Phylum         string
	Class          string
	Order          string
	Family         string
	Subfamily      string
	Genus          string
	SpeciesEpithet string
	CommonName     string
}

// Epithet returns the species epithet of a binomial name: its last
// whitespace-separated token. Names with less than two tokens have no
// epithet and an empty string is returned.
func Epithet(binomial string) string {
	parts := strings.Fields(binomial)
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

// NewSpeciesRow creates a row and derives its species epithet from the
// binomial.
func NewSpeciesRow(
	kingdom, phylum, class string,
	order, family, subfamily, genus string,
	binomial, commonName string,
) SpeciesRow {
	return SpeciesRow{
		Kingdom:        kingdom,
		Phylum:         phylum,
		Class:          class,
		Order:          order,
		Family:         family,
		Subfamily:      strings.TrimSpace(subfamily),
		Genus:          genus,
		Binomial:       binomial,
		SpeciesEpithet: Epithet(binomial),
		CommonName:     commonName,
	}
}

// Taxon converts the row into a species-rank taxon.
func (r SpeciesRow) Taxon() Taxon {
	return Taxon{
		Rank:           Species,
		Kingdom:        r.Kingdom,
		Phylum:         r.Phylum,
		Class:          r.Class,
		Order:          r.Order,
		Family:         r.Family,
		Subfamily:      r.Subfamily,
		Genus:          r.Genus,
		SpeciesEpithet: r.SpeciesEpithet,
		CommonName:     r.CommonName,
	}
}

// NaturalKey returns the classification columns that identify the taxon,
// from kingdom down to the taxon's own rank. Subfamily is part of the key
// for genera and species even when it is empty, so two genera with the
// same name in different subfamilies stay distinct.
func (t Taxon) NaturalKey() []string {
	res := []string{string(t.Rank), t.Kingdom, t.Phylum, t.Class, t.Order}
	switch t.Rank {
	case Order:
		return res
	case Family:
		return append(res, t.Family)
	case Subfamily:
		return append(res, t.Family, t.Subfamily)
	case Genus:
		return append(res, t.Family, t.Subfamily, t.Genus)
	default:
		return append(res, t.Family, t.Subfamily, t.Genus, t.SpeciesEpithet)
	}
}

// ID returns a UUID v5 generated from the natural key. Equal natural keys
// always give the same ID. It identifies taxa in logs, deduplication
// compares taxa directly.
func (t Taxon) ID() uuid.UUID {
	return gnuuid.New(strings.Join(t.NaturalKey(), "|"))
}

// Name returns the value of the column that corresponds to the taxon rank.
// For species it is the binomial assembled from genus and epithet.
func (t Taxon) Name() string {
	switch t.Rank {
	case Order:
		return t.Order
	case Family:
		return t.Family
	case Subfamily:
		return t.Subfamily
	case Genus:
		return t.Genus
	default:
		return strings.TrimSpace(t.Genus + " " + t.SpeciesEpithet)
	}
}
