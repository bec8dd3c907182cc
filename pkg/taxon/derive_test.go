package taxon_test

import (
	"strings"
	"testing"

	"github.com/gnames/taxseed/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bird(order, family, subfamily, genus, binomial, common string) taxon.SpeciesRow {
	return taxon.NewSpeciesRow(
		"Animalia", "Chordata", "Aves",
		order, family, subfamily, genus, binomial, common,
	)
}

func threeBirds() []taxon.SpeciesRow {
	return []taxon.SpeciesRow{
		bird("Anseriformes", "Anatidae", "", "Anas",
			"Anas platyrhynchos", "Mallard"),
		bird("Anseriformes", "Anatidae", "", "Anas",
			"Anas acuta", "Northern Pintail"),
		bird("Accipitriformes", "Accipitridae", "", "Buteo",
			"Buteo jamaicensis", "Red-tailed Hawk"),
	}
}

func TestDeriveThreeSpecies(t *testing.T) {
	g := taxon.Derive(threeBirds())
	cnt := g.Count()

	assert.Equal(t, 2, cnt.Orders)
	assert.Equal(t, 2, cnt.Families)
	assert.Equal(t, 0, cnt.Subfamilies)
	assert.Equal(t, 2, cnt.Genera)
	assert.Equal(t, 3, cnt.Species)
	assert.Equal(t, 9, cnt.Total)

	assert.Equal(t, "Anseriformes", g.Orders[0].Order)
	assert.Equal(t, "Accipitriformes", g.Orders[1].Order)

	var epithets []string
	for _, v := range g.Species {
		if v.Genus == "Anas" {
			epithets = append(epithets, v.SpeciesEpithet)
		}
	}
	assert.Equal(t, []string{"platyrhynchos", "acuta"}, epithets)
}

// Names are compared column by column, a separator character inside a
// name cannot merge two taxa.
func TestDeriveSeparatorInNames(t *testing.T) {
	rows := []taxon.SpeciesRow{
		bird("A|B", "C", "", "G1", "G1 x", ""),
		bird("A", "B|C", "", "G2", "G2 y", ""),
	}
	g := taxon.Derive(rows)
	cnt := g.Count()
	assert.Equal(t, 2, cnt.Orders)
	assert.Equal(t, 2, cnt.Families)
	assert.Equal(t, 2, cnt.Genera)

	families := make(map[string]bool)
	for _, v := range g.Families {
		families[v.Family] = true
	}
	for _, v := range g.Genera {
		assert.True(t, families[v.Family],
			"family of genus %s is emitted", v.Genus)
	}
}

func TestDeriveColumnsAndNames(t *testing.T) {
	rows := []taxon.SpeciesRow{
		bird("Galliformes", "Phasianidae", "Tetraoninae", "Bonasa",
			"Bonasa umbellus", "Ruffed Grouse"),
	}
	g := taxon.Derive(rows)
	require.Len(t, g.Orders, 1)
	require.Len(t, g.Families, 1)
	require.Len(t, g.Subfamilies, 1)
	require.Len(t, g.Genera, 1)
	require.Len(t, g.Species, 1)

	tests := []struct {
		msg       string
		tx        taxon.Taxon
		rank      taxon.Rank
		family    string
		subfamily string
		genus     string
		epithet   string
		common    string
	}{
		{"order", g.Orders[0], taxon.Order, "", "", "", "", "Galliformes"},
		{"family", g.Families[0], taxon.Family, "Phasianidae", "", "", "",
			"Phasianidae"},
		{"subfamily", g.Subfamilies[0], taxon.Subfamily, "Phasianidae",
			"Tetraoninae", "", "", "Tetraoninae"},
		{"genus", g.Genera[0], taxon.Genus, "Phasianidae", "Tetraoninae",
			"Bonasa", "", "Bonasa"},
		{"species", g.Species[0], taxon.Species, "Phasianidae", "Tetraoninae",
			"Bonasa", "umbellus", "Ruffed Grouse"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.Equal(t, v.rank, v.tx.Rank)
			assert.Equal(t, "Animalia", v.tx.Kingdom)
			assert.Equal(t, "Chordata", v.tx.Phylum)
			assert.Equal(t, "Aves", v.tx.Class)
			assert.Equal(t, "Galliformes", v.tx.Order)
			assert.Equal(t, v.family, v.tx.Family)
			assert.Equal(t, v.subfamily, v.tx.Subfamily)
			assert.Equal(t, v.genus, v.tx.Genus)
			assert.Equal(t, v.epithet, v.tx.SpeciesEpithet)
			assert.Equal(t, v.common, v.tx.CommonName)
		})
	}
}

func TestDeriveOrderDedup(t *testing.T) {
	var rows []taxon.SpeciesRow
	for i := range 50 {
		epithet := strings.Repeat("a", i+1)
		rows = append(rows, bird("Passeriformes", "Turdidae", "", "Turdus",
			"Turdus "+epithet, "Thrush"))
	}
	g := taxon.Derive(rows)
	assert.Len(t, g.Orders, 1)
	assert.Len(t, g.Families, 1)
	assert.Len(t, g.Genera, 1)
	assert.Len(t, g.Species, 50)
}

func TestDeriveFirstSeenOrder(t *testing.T) {
	rows := []taxon.SpeciesRow{
		bird("B", "Bidae", "", "Bus", "Bus one", "one"),
		bird("A", "Aidae", "", "Aus", "Aus two", "two"),
		bird("B", "Bidae", "", "Bus", "Bus three", "three"),
		bird("C", "Cidae", "", "Cus", "Cus four", "four"),
		bird("A", "Aidae", "", "Aus", "Aus five", "five"),
	}
	g := taxon.Derive(rows)

	var orders []string
	for _, v := range g.Orders {
		orders = append(orders, v.Order)
	}
	assert.Equal(t, []string{"B", "A", "C"}, orders)

	var species []string
	for _, v := range g.Species {
		species = append(species, v.SpeciesEpithet)
	}
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, species)
}

func TestDeriveSubfamilies(t *testing.T) {
	t.Run("sparse subfamilies", func(t *testing.T) {
		rows := []taxon.SpeciesRow{
			bird("Anseriformes", "Anatidae", "Anserinae", "Anser",
				"Anser albifrons", "Greater White-fronted Goose"),
			bird("Anseriformes", "Anatidae", "", "Anas",
				"Anas acuta", "Northern Pintail"),
			bird("Anseriformes", "Anatidae", " ", "Aythya",
				"Aythya valisineria", "Canvasback"),
		}
		g := taxon.Derive(rows)
		require.Len(t, g.Subfamilies, 1)
		assert.Equal(t, "Anserinae", g.Subfamilies[0].Subfamily)
	})

	t.Run("no subfamilies omits section", func(t *testing.T) {
		g := taxon.Derive(threeBirds())
		var titles []string
		for _, v := range g.Sections() {
			titles = append(titles, v.Title)
		}
		assert.Equal(t,
			[]string{"Orders", "Families", "Genera", "Species"}, titles)
	})

	t.Run("subfamilies section in the middle", func(t *testing.T) {
		rows := []taxon.SpeciesRow{
			bird("Anseriformes", "Anatidae", "Anserinae", "Anser",
				"Anser albifrons", "Greater White-fronted Goose"),
		}
		var titles []string
		for _, v := range taxon.Derive(rows).Sections() {
			titles = append(titles, v.Title)
		}
		assert.Equal(t,
			[]string{"Orders", "Families", "Subfamilies", "Genera", "Species"},
			titles)
	})
}

func TestDeriveGenusKeepsSubfamily(t *testing.T) {
	rows := []taxon.SpeciesRow{
		bird("O", "F", "Alphinae", "Xus", "Xus one", "one"),
		bird("O", "F", "Betinae", "Xus", "Xus two", "two"),
		bird("O", "F", "Alphinae", "Xus", "Xus three", "three"),
	}
	g := taxon.Derive(rows)
	require.Len(t, g.Genera, 2)
	assert.Equal(t, "Alphinae", g.Genera[0].Subfamily)
	assert.Equal(t, "Betinae", g.Genera[1].Subfamily)
}

func TestDeriveNaturalKeyUniqueness(t *testing.T) {
	rows := []taxon.SpeciesRow{
		bird("O1", "F1", "S1", "G1", "G1 a", "a"),
		bird("O1", "F1", "S1", "G1", "G1 b", "b"),
		bird("O1", "F2", "", "G2", "G2 c", "c"),
		bird("O2", "F3", "S2", "G3", "G3 d", "d"),
		bird("O2", "F3", "S3", "G3", "G3 e", "e"),
	}
	g := taxon.Derive(rows)
	groups := [][]taxon.Taxon{g.Orders, g.Families, g.Subfamilies, g.Genera}
	for _, grp := range groups {
		seen := make(map[string]bool)
		for _, v := range grp {
			key := strings.Join(v.NaturalKey(), "|")
			assert.False(t, seen[key], key)
			seen[key] = true
		}
	}
	assert.Len(t, g.Genera, 4)
}

func TestDeriveDeterministic(t *testing.T) {
	rows := threeBirds()
	assert.Equal(t, taxon.Derive(rows), taxon.Derive(rows))
}

func TestPrefix(t *testing.T) {
	rows := threeBirds()
	tests := []struct {
		msg string
		n   int
		res int
	}{
		{"smaller", 2, 2},
		{"equal", 3, 3},
		{"bigger", 100, 3},
		{"zero", 0, 0},
		{"negative means all", -1, 3},
	}
	for _, v := range tests {
		assert.Len(t, taxon.Prefix(rows, v.n), v.res, v.msg)
	}
}
