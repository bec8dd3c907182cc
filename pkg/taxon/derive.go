package taxon

// Groups holds derived taxa split by rank. Every group is deduplicated by
// natural key and keeps the first-seen order of the input.
type Groups struct {
	Orders      []Taxon
	Families    []Taxon
	Subfamilies []Taxon
	Genera      []Taxon
	Species     []Taxon
}

// Section is a titled group of taxa in output order.
type Section struct {
	Title string
	Taxa  []Taxon
}

// Counts gives the number of taxa for each rank.
type Counts struct {
	Orders      int `json:"orders"      yaml:"orders"`
	Families    int `json:"families"    yaml:"families"`
	Subfamilies int `json:"subfamilies" yaml:"subfamilies"`
	Genera      int `json:"genera"      yaml:"genera"`
	Species     int `json:"species"     yaml:"species"`
	Total       int `json:"total"       yaml:"total"`
}

// Derive builds all ancestor taxa implied by the rows and returns them
// together with the species. Each level is projected and deduplicated
// independently. Rows with an empty subfamily do not create subfamily
// taxa.
func Derive(rows []SpeciesRow) Groups {
	var res Groups
	res.Orders = project(rows, Order)
	res.Families = project(rows, Family)
	res.Subfamilies = project(rows, Subfamily)
	res.Genera = project(rows, Genus)

	res.Species = make([]Taxon, len(rows))
	for i := range rows {
		res.Species[i] = rows[i].Taxon()
	}
	return res
}

// Prefix returns at most n first rows. It does not copy the rows.
func Prefix(rows []SpeciesRow, n int) []SpeciesRow {
	if n < 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}

// Sections returns groups in ancestor-first order: orders, families,
// subfamilies, genera, species. The subfamilies section is omitted when
// there are no subfamilies.
func (g Groups) Sections() []Section {
	res := []Section{
		{Title: "Orders", Taxa: g.Orders},
		{Title: "Families", Taxa: g.Families},
	}
	if len(g.Subfamilies) > 0 {
		res = append(res, Section{Title: "Subfamilies", Taxa: g.Subfamilies})
	}
	res = append(res,
		Section{Title: "Genera", Taxa: g.Genera},
		Section{Title: "Species", Taxa: g.Species},
	)
	return res
}

// Count returns the number of taxa per rank.
func (g Groups) Count() Counts {
	res := Counts{
		Orders:      len(g.Orders),
		Families:    len(g.Families),
		Subfamilies: len(g.Subfamilies),
		Genera:      len(g.Genera),
		Species:     len(g.Species),
	}
	res.Total = res.Orders + res.Families + res.Subfamilies +
		res.Genera + res.Species
	return res
}

// project converts every row into a taxon of the given rank and removes
// duplicates keeping the first occurrence. Projected taxa are compared
// field by field, columns below the rank are always empty.
func project(rows []SpeciesRow, rank Rank) []Taxon {
	var res []Taxon
	seen := make(map[Taxon]struct{})
	for i := range rows {
		t, ok := ancestor(rows[i], rank)
		if !ok {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		res = append(res, t)
	}
	return res
}

// ancestor returns the taxon of a given rank for the row. The second value
// is false when the row has no taxon at that rank.
func ancestor(r SpeciesRow, rank Rank) (Taxon, bool) {
	t := Taxon{
		Rank:    rank,
		Kingdom: r.Kingdom,
		Phylum:  r.Phylum,
		Class:   r.Class,
		Order:   r.Order,
	}
	switch rank {
	case Order:
		t.CommonName = r.Order
	case Family:
		t.Family = r.Family
		t.CommonName = r.Family
	case Subfamily:
		if r.Subfamily == "" {
			return Taxon{}, false
		}
		t.Family = r.Family
		t.Subfamily = r.Subfamily
		t.CommonName = r.Subfamily
	case Genus:
		t.Family = r.Family
		t.Subfamily = r.Subfamily
		t.Genus = r.Genus
		t.CommonName = r.Genus
	default:
		return r.Taxon(), true
	}
	return t, true
}
