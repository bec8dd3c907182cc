/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/internal/iodb"
	"github.com/gnames/taxseed/internal/ioload"
	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/db"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
func getLoadCmd() *cobra.Command {
	var (
		engine   string
		dbPath   string
		host     string
		port     int
		user     string
		database string
		create   bool
		files    []string
		format   string
	)

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load generated SQL seed files into a database",
		Long: `Execute generated SQL files against SQLite or PostgreSQL.

By default the test taxa file and the sightings file from the output
directory are loaded, in that order. Each file runs in its own
transaction. Statements skip rows that already exist, so loading
the same files again changes nothing.

Files generated for SQLite cannot be loaded into PostgreSQL, regenerate
them with '--dialect postgres' first.

Examples:
  taxseed load --create
  taxseed load --db-path birds.db --files seed_taxa_full.sql
  taxseed load -e postgres --host localhost --database birds --create`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, loadFlags{
				engine: engine, dbPath: dbPath, host: host, port: port,
				user: user, database: database, create: create,
				files: files, format: format,
			})
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	f := loadCmd.Flags()
	f.StringVarP(&engine, "engine", "e", "", "database engine: sqlite or postgres")
	f.StringVar(&dbPath, "db-path", "", "SQLite database file")
	f.StringVar(&host, "host", "", "PostgreSQL host")
	f.IntVar(&port, "port", 0, "PostgreSQL port")
	f.StringVar(&user, "user", "", "PostgreSQL user")
	f.StringVar(&database, "database", "", "PostgreSQL database name")
	f.BoolVarP(&create, "create", "c", false,
		"create taxa and sightings tables if they do not exist")
	f.StringSliceVar(&files, "files", nil,
		"SQL files to load in order (default: test taxa and sightings)")
	formatFlag(loadCmd, &format)

	return loadCmd
}

type loadFlags struct {
	engine, dbPath, host string
	port                 int
	user, database       string
	create               bool
	files                []string
	format               string
}

func runLoad(cmd *cobra.Command, lf loadFlags) error {
	if err := checkFormat(lf.format); err != nil {
		return err
	}

	var loadOpts []config.Option
	flags := cmd.Flags()
	if flags.Changed("engine") {
		loadOpts = append(loadOpts, config.OptDatabaseEngine(lf.engine))
	}
	if flags.Changed("db-path") {
		loadOpts = append(loadOpts, config.OptDatabasePath(lf.dbPath))
	}
	if flags.Changed("host") {
		loadOpts = append(loadOpts, config.OptDatabaseHost(lf.host))
	}
	if flags.Changed("port") {
		loadOpts = append(loadOpts, config.OptDatabasePort(lf.port))
	}
	if flags.Changed("user") {
		loadOpts = append(loadOpts, config.OptDatabaseUser(lf.user))
	}
	if flags.Changed("database") {
		loadOpts = append(loadOpts, config.OptDatabaseDatabase(lf.database))
	}
	if flags.Changed("create") {
		loadOpts = append(loadOpts, config.OptLoadCreateSchema(lf.create))
	}
	if flags.Changed("files") {
		loadOpts = append(loadOpts, config.OptLoadFiles(lf.files))
	}
	cfg.Update(loadOpts)

	ctx := context.Background()
	op, err := iodb.NewOperator(cfg.Database.Engine)
	if err != nil {
		return err
	}
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	if op.Engine() == db.Postgres {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	} else {
		gn.Info("Connected to database: <em>%s</em>", cfg.Database.Path)
	}

	res, err := ioload.New(cfg, op).Load(ctx, nil)
	if err != nil {
		return err
	}

	if err = printReport(cmd.OutOrStdout(), lf.format, res); err != nil {
		return err
	}

	gn.Info("Database has <em>%d</em> taxa and <em>%d</em> sightings",
		res.Taxa, res.Sightings)
	return nil
}
