package sighting_test

import (
	"fmt"
	"testing"

	"github.com/gnames/taxseed/pkg/sighting"
	"github.com/gnames/taxseed/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func species(n, perFamily int) []taxon.Taxon {
	var rows []taxon.SpeciesRow
	for i := range n {
		fam := fmt.Sprintf("Fam%02didae", i/perFamily)
		rows = append(rows, taxon.NewSpeciesRow(
			"Animalia", "Chordata", "Aves", "Passeriformes", fam, "",
			"Genus", fmt.Sprintf("Genus sp%d", i), fmt.Sprintf("Bird %d", i),
		))
	}
	return taxon.Derive(rows).Species
}

func TestSample(t *testing.T) {
	t.Run("two per family", func(t *testing.T) {
		sp := species(30, 3)
		res := sighting.Sample(sp, 2, 16)
		require.Len(t, res, 16)
		assert.Equal(t, "Genus sp0", res[0].Name())
		assert.Equal(t, "Genus sp1", res[1].Name())
		assert.Equal(t, "Genus sp3", res[2].Name())
		assert.Equal(t, "Genus sp4", res[3].Name())

		perFam := make(map[string]int)
		for _, v := range res {
			perFam[v.Family]++
		}
		for k, v := range perFam {
			assert.LessOrEqual(t, v, 2, k)
		}
	})

	t.Run("small pool", func(t *testing.T) {
		sp := species(5, 5)
		res := sighting.Sample(sp, 2, 16)
		assert.Len(t, res, 2)
	})

	t.Run("families are not contiguous", func(t *testing.T) {
		mk := func(fam, epithet string) taxon.Taxon {
			return taxon.NewSpeciesRow("Animalia", "Chordata", "Aves",
				"O", fam, "", "G", "G "+epithet, epithet).Taxon()
		}
		sp := []taxon.Taxon{
			mk("A", "a1"), mk("B", "b1"), mk("A", "a2"),
			mk("A", "a3"), mk("B", "b2"), mk("B", "b3"),
		}
		res := sighting.Sample(sp, 2, 16)
		var names []string
		for _, v := range res {
			names = append(names, v.SpeciesEpithet)
		}
		assert.Equal(t, []string{"a1", "b1", "a2", "b2"}, names)
	})

	t.Run("ignores higher ranks", func(t *testing.T) {
		rows := []taxon.SpeciesRow{taxon.NewSpeciesRow("Animalia",
			"Chordata", "Aves", "O", "F", "", "G", "G s", "c")}
		g := taxon.Derive(rows)
		res := sighting.Sample(append(g.Genera, g.Species...), 2, 16)
		require.Len(t, res, 1)
		assert.Equal(t, taxon.Species, res[0].Rank)
	})
}

func TestSynthesizeTripGrouping(t *testing.T) {
	sample := species(9, 1)
	b := sighting.Synthesize(sample,
		sighting.Plan{TripRecords: 9, TripSize: 3, CasualRecords: 0})

	require.Len(t, b.Trips, 9)
	var ids []int
	for _, v := range b.Trips {
		require.NotNil(t, v.TripID)
		ids = append(ids, *v.TripID)
	}
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2, 3, 3, 3}, ids)
	assert.Empty(t, b.Casual)
}

func TestSynthesizeDefaultPlan(t *testing.T) {
	sample := sighting.Sample(species(40, 2), 2, 16)
	b := sighting.Synthesize(sample, sighting.DefaultPlan())

	require.Len(t, b.Trips, 9)
	require.Len(t, b.Casual, 7)

	assert.Equal(t, "2025-10-01", b.Trips[0].Date)
	assert.Equal(t, "2025-10-09", b.Trips[8].Date)
	assert.Equal(t, "Field location 1", b.Trips[0].Location)
	assert.Equal(t, "Field location 9", b.Trips[8].Location)
	assert.Equal(t, "Observed during field trip", b.Trips[0].Notes)

	assert.Nil(t, b.Casual[0].TripID)
	assert.Equal(t, "2025-09-11", b.Casual[0].Date)
	assert.Equal(t, "2025-09-17", b.Casual[6].Date)
	assert.Equal(t, "Home backyard", b.Casual[0].Location)
	assert.Equal(t, "Backyard observation", b.Casual[0].Notes)

	// with 16 records the blocks do not overlap
	assert.Equal(t, sample[9], b.Casual[0].Species)
	assert.Equal(t, sample[15], b.Casual[6].Species)
}

func TestSynthesizeShortSample(t *testing.T) {
	sample := species(4, 1)
	b := sighting.Synthesize(sample, sighting.DefaultPlan())
	assert.Len(t, b.Trips, 4)
	assert.Len(t, b.Casual, 4)
	assert.Equal(t, 2, *b.Trips[3].TripID)

	b = sighting.Synthesize(nil, sighting.DefaultPlan())
	assert.Empty(t, b.Trips)
	assert.Empty(t, b.Casual)
}

func TestSynthesizeLongTripDates(t *testing.T) {
	sample := species(12, 1)
	b := sighting.Synthesize(sample,
		sighting.Plan{TripRecords: 12, TripSize: 4})
	assert.Equal(t, "2025-10-12", b.Trips[11].Date)
	assert.Equal(t, 3, *b.Trips[11].TripID)
}

func TestSynthesizeNegativeCounts(t *testing.T) {
	sample := species(5, 1)
	var b sighting.Blocks
	assert.NotPanics(t, func() {
		b = sighting.Synthesize(sample,
			sighting.Plan{TripRecords: -2, TripSize: 3, CasualRecords: -1})
	})
	assert.Empty(t, b.Trips)
	assert.Empty(t, b.Casual)

	b = sighting.Synthesize(sample,
		sighting.Plan{TripRecords: 2, TripSize: 1, CasualRecords: 0})
	assert.Len(t, b.Trips, 2)
	assert.Empty(t, b.Casual)
}
