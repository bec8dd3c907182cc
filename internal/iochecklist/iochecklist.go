// Package iochecklist reads a species checklist from a CSV file.
//
// The file must have a header. Column names are matched case-insensitively
// after trimming; spaces and dashes count as underscores. Required columns
// are order, family, genus and species (the binomial); subfamily and
// common_name are optional. Kingdom, phylum and class are not part of the
// file, they come from configuration.
package iochecklist

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/taxon"
	"golang.org/x/text/unicode/norm"
)

const utf8BOM = "\uFEFF"

// column aliases accepted in the header.
var aliases = map[string]string{
	"order":        "order",
	"family":       "family",
	"subfamily":    "subfamily",
	"genus":        "genus",
	"species":      "species",
	"binomial":     "species",
	"common_name":  "common_name",
	"english_name": "common_name",
	"vernacular":   "common_name",
}

var required = []string{"order", "family", "genus", "species"}

// Stats summarizes a checklist read.
type Stats struct {
	// Rows is the number of data rows in the file.
	Rows int `json:"rows" yaml:"rows"`
	// Species is the number of rows accepted.
	Species int `json:"species" yaml:"species"`
	// Skipped is the number of rows without order, family or genus, or
	// with a broken CSV record.
	Skipped int `json:"skipped" yaml:"skipped"`
	// Unusual is the number of accepted rows whose binomial is not a
	// well-formed species name or does not start with the genus.
	Unusual int `json:"unusual" yaml:"unusual"`
	// Duplicates is the number of accepted rows repeating the genus and
	// epithet of an earlier row. Sightings of such species resolve to the
	// first of them.
	Duplicates int `json:"duplicates" yaml:"duplicates"`
}

// Reader reads checklists.
type Reader struct {
	cfg config.InputConfig
	prs gnparser.GNparser
}

// New creates a Reader for the given input settings.
func New(cfg config.InputConfig) *Reader {
	prsCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Zoological))
	return &Reader{cfg: cfg, prs: gnparser.New(prsCfg)}
}

// Read opens the configured checklist file and reads its rows.
func (r *Reader) Read(ctx context.Context) ([]taxon.SpeciesRow, Stats, error) {
	f, err := os.Open(r.cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, Stats{}, InputNotFoundError(r.cfg.Path, err)
		}
		return nil, Stats{}, ChecklistReadError(r.cfg.Path, err)
	}
	defer f.Close()

	return r.Parse(ctx, f)
}

// Parse reads checklist rows from an io.Reader. Rows come back in file
// order. Rows missing order, family or genus are skipped with a warning.
func (r *Reader) Parse(
	ctx context.Context,
	in io.Reader,
) ([]taxon.SpeciesRow, Stats, error) {
	var stats Stats
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, ChecklistEmptyError(r.cfg.Path)
		}
		return nil, stats, ChecklistReadError(r.cfg.Path, err)
	}
	idx, err := r.columns(header)
	if err != nil {
		return nil, stats, err
	}

	var res []taxon.SpeciesRow
	binomials := make(map[[2]string]int)
	for line := 2; ; line++ {
		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, err
			}
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		stats.Rows++
		if err != nil {
			slog.Warn("Skipping broken CSV record", "line", line, "error", err)
			stats.Skipped++
			continue
		}

		cell := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return norm.NFC.String(strings.TrimSpace(rec[i]))
		}

		order, family, genus := cell("order"), cell("family"), cell("genus")
		binomial := cell("species")
		if order == "" || family == "" || genus == "" {
			slog.Warn("Skipping row without order, family or genus",
				"line", line, "species", binomial)
			stats.Skipped++
			continue
		}

		if !r.wellFormed(genus, binomial) {
			slog.Warn("Unusual species name",
				"line", line, "genus", genus, "species", binomial)
			stats.Unusual++
		}

		row := taxon.NewSpeciesRow(
			r.cfg.Kingdom, r.cfg.Phylum, r.cfg.Class,
			order, family, cell("subfamily"), genus,
			binomial, cell("common_name"),
		)
		key := [2]string{row.Genus, row.SpeciesEpithet}
		if first, ok := binomials[key]; ok {
			slog.Warn("Duplicate species name",
				"line", line, "first_line", first, "species", binomial)
			stats.Duplicates++
		} else {
			binomials[key] = line
		}
		res = append(res, row)
	}
	stats.Species = len(res)

	if stats.Species == 0 {
		return nil, stats, ChecklistEmptyError(r.cfg.Path)
	}
	return res, stats, nil
}

// columns maps canonical column names to their positions.
func (r *Reader) columns(header []string) (map[string]int, error) {
	res := make(map[string]int)
	for i, v := range header {
		if i == 0 {
			v = strings.TrimPrefix(v, utf8BOM)
		}
		v = strings.ToLower(strings.TrimSpace(v))
		v = strings.NewReplacer(" ", "_", "-", "_").Replace(v)
		col, ok := aliases[v]
		if !ok {
			continue
		}
		if _, dup := res[col]; !dup {
			res[col] = i
		}
	}

	var missing []string
	for _, v := range required {
		if _, ok := res[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return nil, ChecklistHeaderError(r.cfg.Path, missing)
	}
	return res, nil
}

// wellFormed checks that the binomial parses as a two-word species name
// of the given genus.
func (r *Reader) wellFormed(genus, binomial string) bool {
	p := r.prs.ParseName(binomial)
	if !p.Parsed || p.Cardinality != 2 || p.Canonical == nil {
		return false
	}
	return strings.HasPrefix(p.Canonical.Simple, genus+" ")
}
