// Package iogenerate turns a species checklist into SQL artifacts: the
// full taxonomy, a test subset and sample sightings.
package iogenerate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/taxseed/internal/iochecklist"
	"github.com/gnames/taxseed/internal/iofs"
	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/lifecycle"
	"github.com/gnames/taxseed/pkg/sighting"
	"github.com/gnames/taxseed/pkg/sqlgen"
	"github.com/gnames/taxseed/pkg/taxon"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"
)

// Artifact kinds.
const (
	KindFull      = "full"
	KindTest      = "test"
	KindSightings = "sightings"
)

// Command is written into artifact headers as the way to regenerate them.
const Command = "taxseed generate"

type generator struct {
	cfg *config.Config
}

// New creates a Generator from configuration.
func New(cfg *config.Config) lifecycle.Generator {
	return &generator{cfg: cfg}
}

// job renders one artifact.
type job struct {
	art    lifecycle.Artifact
	render func(io.Writer) error
}

// Generate reads the checklist and writes all artifacts concurrently. A
// missing checklist fails before any file is touched. Each artifact is
// replaced atomically, so an interrupted run leaves old artifacts intact.
func (g *generator) Generate(
	ctx context.Context,
) (lifecycle.GenerateReport, error) {
	res := lifecycle.GenerateReport{
		Input:   g.cfg.Input.Path,
		Dialect: g.cfg.Output.Dialect,
	}

	rows, stats, err := iochecklist.New(g.cfg.Input).Read(ctx)
	if err != nil {
		return res, err
	}
	res.Checklist = lifecycle.ChecklistStats{
		Rows:       stats.Rows,
		Species:    stats.Species,
		Skipped:    stats.Skipped,
		Unusual:    stats.Unusual,
		Duplicates: stats.Duplicates,
	}
	gn.Info("Loaded <em>%s</em> species from <em>%s</em>",
		humanize.Comma(int64(stats.Species)), g.cfg.Input.Path)
	if stats.Skipped > 0 {
		gn.Warn("Skipped <em>%d</em> rows without order, family or genus",
			stats.Skipped)
	}
	if stats.Duplicates > 0 {
		gn.Warn("<em>%d</em> rows repeat an earlier species name, "+
			"their sightings refer to the first one", stats.Duplicates)
	}

	jobs := g.jobs(rows)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.cfg.JobsNumber, 1))
	for i := range jobs {
		eg.Go(func() error {
			return g.write(ctx, &jobs[i])
		})
	}
	if err := eg.Wait(); err != nil {
		return res, err
	}

	for _, v := range jobs {
		res.Artifacts = append(res.Artifacts, v.art)
	}
	return res, nil
}

// jobs prepares artifacts from checklist rows.
func (g *generator) jobs(rows []taxon.SpeciesRow) []job {
	out := g.cfg.Output
	e := sqlgen.New(sqlgen.Dialect(out.Dialect))
	src := g.cfg.Input.Source

	full := taxon.Derive(rows)
	testRows := taxon.Prefix(rows, out.TestSize)
	test := taxon.Derive(testRows)

	sample := sighting.Sample(
		test.Species, g.cfg.Sample.PerFamily, g.cfg.Sample.MaxSpecies,
	)
	for _, v := range sample {
		slog.Debug("Sampled species", "name", v.Name(), "id", v.ID())
	}
	blocks := sighting.Synthesize(sample, sighting.Plan{
		TripRecords:   g.cfg.Sample.TripRecords,
		TripSize:      g.cfg.Sample.TripSize,
		CasualRecords: g.cfg.Sample.CasualRecords,
	})

	fullHeader := sqlgen.Header{
		Description: fmt.Sprintf("%s - Full Dataset (All %s species)",
			src, humanize.Comma(int64(len(rows)))),
		Source:  src,
		Command: Command,
	}
	testHeader := sqlgen.Header{
		Description: fmt.Sprintf("%s - Test Subset (First %d species)",
			src, len(testRows)),
		Source:  src,
		Command: Command,
	}
	sightingsHeader := sqlgen.Header{
		Description: "Generated sample sightings from " + src,
		Notes: []string{fmt.Sprintf(
			"Uses species from the first %d for test compatibility",
			len(testRows))},
		Command: Command,
	}

	fullCount, testCount := full.Count(), test.Count()
	return []job{
		{
			art: lifecycle.Artifact{
				Kind:       KindFull,
				Path:       filepath.Join(out.Dir, out.FullFile),
				Taxa:       fullCount,
				Statements: fullCount.Total,
			},
			render: func(w io.Writer) error {
				return e.WriteTaxa(w, fullHeader, full)
			},
		},
		{
			art: lifecycle.Artifact{
				Kind:       KindTest,
				Path:       filepath.Join(out.Dir, out.TestFile),
				Taxa:       testCount,
				Statements: testCount.Total,
			},
			render: func(w io.Writer) error {
				return e.WriteTaxa(w, testHeader, test)
			},
		},
		{
			art: lifecycle.Artifact{
				Kind:            KindSightings,
				Path:            filepath.Join(out.Dir, out.SightingsFile),
				TripSightings:   len(blocks.Trips),
				CasualSightings: len(blocks.Casual),
				Statements:      len(blocks.Trips) + len(blocks.Casual),
			},
			render: func(w io.Writer) error {
				return e.WriteSightings(w, sightingsHeader, blocks)
			},
		},
	}
}

// write renders a job into its file, measuring size and checksum of the
// content on the way.
func (g *generator) write(ctx context.Context, j *job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h := xxh3.New()
	cw := &countWriter{}
	err := iofs.WriteAtomic(j.art.Path, func(w io.Writer) error {
		return j.render(io.MultiWriter(w, h, cw))
	})
	if err != nil {
		return GenerateArtifactError(j.art.Kind, j.art.Path, err)
	}

	j.art.Bytes = cw.n
	j.art.Checksum = fmt.Sprintf("%016x", h.Sum64())
	slog.Info("Wrote artifact",
		"kind", j.art.Kind,
		"path", j.art.Path,
		"statements", j.art.Statements,
		"bytes", j.art.Bytes,
	)
	gn.Info("Wrote <em>%s</em> (%s statements, %s)",
		j.art.Path,
		humanize.Comma(int64(j.art.Statements)),
		humanize.Bytes(uint64(j.art.Bytes)),
	)
	return nil
}

type countWriter struct {
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
