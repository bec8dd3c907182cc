// Package sighting synthesizes illustrative sighting records for a small
// set of species. The records are deterministic test data, not real
// observations.
package sighting

import (
	"fmt"
	"time"

	"github.com/gnames/taxseed/pkg/taxon"
)

// Sighting is an observation of a species. The species is referenced by
// its natural key, numeric ids are assigned by the database later.
type Sighting struct {
	// TripID groups sightings made during the same trip. Nil for casual
	// sightings.
	TripID    *int
	Species   taxon.Taxon
	Notes     string
	MediaPath string
	Date      string
	Location  string
}

// Plan describes the shape of synthesized data.
type Plan struct {
	// TripRecords is the number of first sample records that belong to
	// trips.
	TripRecords int
	// TripSize is the number of consecutive records sharing one trip.
	TripSize int
	// CasualRecords is the number of last sample records without a trip.
	CasualRecords int
}

// DefaultPlan gives 3 trips of 3 sightings and 7 casual sightings.
func DefaultPlan() Plan {
	return Plan{TripRecords: 9, TripSize: 3, CasualRecords: 7}
}

// Blocks holds the two groups of synthesized sightings.
type Blocks struct {
	Trips  []Sighting
	Casual []Sighting
}

const dateFormat = "2006-01-02"

var (
	tripBaseDate   = time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	casualBaseDate = time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)
)

// Sample picks up to perFamily first species of every family, keeping the
// input order, and truncates the result to limit species. Taxa that are not
// species are ignored.
func Sample(species []taxon.Taxon, perFamily, limit int) []taxon.Taxon {
	var res []taxon.Taxon
	perFam := make(map[string]int)
	for _, v := range species {
		if v.Rank != taxon.Species {
			continue
		}
		if perFam[v.Family] >= perFamily {
			continue
		}
		perFam[v.Family]++
		res = append(res, v)
	}
	if limit >= 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

// Synthesize creates trip and casual sightings for the sample. Trip ids
// start at 1 and change every p.TripSize records. Dates and locations
// depend only on the position of a record in its block.
func Synthesize(sample []taxon.Taxon, p Plan) Blocks {
	var res Blocks
	if p.TripSize < 1 {
		p.TripSize = 1
	}
	p.TripRecords = max(p.TripRecords, 0)
	p.CasualRecords = max(p.CasualRecords, 0)

	trips := sample[:min(p.TripRecords, len(sample))]
	for i, sp := range trips {
		tripID := i/p.TripSize + 1
		res.Trips = append(res.Trips, Sighting{
			TripID:   &tripID,
			Species:  sp,
			Notes:    "Observed during field trip",
			Date:     tripBaseDate.AddDate(0, 0, i).Format(dateFormat),
			Location: fmt.Sprintf("Field location %d", i+1),
		})
	}

	casual := sample[len(sample)-min(p.CasualRecords, len(sample)):]
	for i, sp := range casual {
		res.Casual = append(res.Casual, Sighting{
			Species:  sp,
			Notes:    "Backyard observation",
			Date:     casualBaseDate.AddDate(0, 0, i+1).Format(dateFormat),
			Location: "Home backyard",
		})
	}
	return res
}
