// Package ioload executes generated SQL artifacts against a database.
// Every artifact runs in its own transaction, so a failing statement
// leaves the database as it was before that artifact.
package ioload

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/taxseed/internal/ioschema"
	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/db"
	"github.com/gnames/taxseed/pkg/lifecycle"
	"github.com/gnames/taxseed/pkg/sqlgen"
)

type loader struct {
	cfg *config.Config
	op  db.Operator
	// showProgress enables the progress bar.
	showProgress bool
}

// New creates a Loader that uses a connected operator.
func New(cfg *config.Config, op db.Operator) lifecycle.Loader {
	return &loader{cfg: cfg, op: op, showProgress: true}
}

// DefaultFiles returns the test taxa artifact and the sightings artifact
// from the output directory.
func DefaultFiles(cfg *config.Config) []string {
	return []string{
		filepath.Join(cfg.Output.Dir, cfg.Output.TestFile),
		filepath.Join(cfg.Output.Dir, cfg.Output.SightingsFile),
	}
}

// Load executes artifacts in the given order. Empty files means the
// configured Load.Files or, if those are empty too, DefaultFiles.
func (l *loader) Load(
	ctx context.Context,
	files []string,
) (lifecycle.LoadReport, error) {
	res := lifecycle.LoadReport{Engine: l.op.Engine()}
	if l.op.DB() == nil {
		return res, NotConnectedError()
	}

	if len(files) == 0 {
		files = l.cfg.Load.Files
	}
	if len(files) == 0 {
		files = DefaultFiles(l.cfg)
	}

	// all files are read before anything is executed
	scripts := make([][]string, len(files))
	for i, v := range files {
		data, err := os.ReadFile(v)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return res, ArtifactNotFoundError(v, err)
			}
			return res, ArtifactReadError(v, err)
		}
		stmts := sqlgen.SplitStatements(string(data))
		if err := l.checkDialect(v, stmts); err != nil {
			return res, err
		}
		scripts[i] = stmts
	}

	if l.cfg.Load.CreateSchema {
		if err := ioschema.NewManager(l.op).Create(ctx); err != nil {
			return res, err
		}
	}

	for i, v := range files {
		inserted, err := l.loadFile(ctx, v, scripts[i])
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, lifecycle.LoadedFile{
			Path:       v,
			Statements: len(scripts[i]),
			Inserted:   inserted,
		})
		gn.Info(
			"Loaded <em>%s</em>: %s statements, %s new rows",
			filepath.Base(v),
			humanize.Comma(int64(len(scripts[i]))),
			humanize.Comma(inserted),
		)
	}

	if err := l.summary(ctx, &res); err != nil {
		return res, err
	}
	return res, nil
}

// checkDialect rejects SQLite-only statements for PostgreSQL.
func (l *loader) checkDialect(path string, stmts []string) error {
	if l.op.Engine() != db.Postgres {
		return nil
	}
	for _, v := range stmts {
		if strings.HasPrefix(v, "INSERT OR IGNORE") {
			return DialectError(path, l.op.Engine())
		}
	}
	return nil
}

func (l *loader) loadFile(
	ctx context.Context,
	path string,
	stmts []string,
) (int64, error) {
	var inserted int64
	slog.Info("Loading artifact", "path", path, "statements", len(stmts))

	var bar *pb.ProgressBar
	if l.showProgress {
		bar = pb.Full.Start(len(stmts))
		bar.Set("prefix", filepath.Base(path)+": ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	tx, err := l.op.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, TransactionError(path, err)
	}
	defer tx.Rollback()

	for i, stmt := range stmts {
		r, err := tx.ExecContext(ctx, stmt)
		if err != nil {
			return 0, StatementError(path, i+1, stmt, err)
		}
		if n, err := r.RowsAffected(); err == nil {
			inserted += n
		}
		if bar != nil {
			bar.Increment()
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, TransactionError(path, err)
	}
	return inserted, nil
}

// summary counts rows of destination tables that exist.
func (l *loader) summary(ctx context.Context, res *lifecycle.LoadReport) error {
	var err error
	var exists bool

	if exists, err = l.op.TableExists(ctx, "taxa"); err != nil {
		return err
	}
	if exists {
		if res.Taxa, err = l.op.Count(ctx, "taxa"); err != nil {
			return err
		}
	}

	if exists, err = l.op.TableExists(ctx, "sightings"); err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if res.Sightings, err = l.op.Count(ctx, "sightings"); err != nil {
		return err
	}

	q := "SELECT count(*) FROM sightings WHERE taxon_id IS NULL"
	var unresolved sql.NullInt64
	if err = l.op.DB().QueryRowContext(ctx, q).Scan(&unresolved); err != nil {
		return CountError("sightings", err)
	}
	res.UnresolvedSightings = int(unresolved.Int64)
	if res.UnresolvedSightings > 0 {
		gn.Warn("<em>%d</em> sightings refer to species missing in taxa",
			res.UnresolvedSightings)
	}
	return nil
}
