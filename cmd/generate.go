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
	"github.com/gnames/taxseed/internal/iogenerate"
	"github.com/gnames/taxseed/pkg/config"
	"github.com/spf13/cobra"
)

// getGenerateCmd returns the generate command.
func getGenerateCmd() *cobra.Command {
	var (
		input    string
		outDir   string
		dialect  string
		testSize int
		source   string
		format   string
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate SQL seed files from a species checklist",
		Long: `Read a CSV species checklist and write three SQL files:

  1. seed_taxa_full.sql: orders, families, subfamilies, genera and
     species of the whole checklist
  2. seed_taxa_test.sql: the same for the first species only
     (--test-size, 100 by default)
  3. seed_sightings.sql: sample sightings of species from the test subset,
     grouped into trips and casual observations

The checklist needs 'order', 'family', 'genus' and 'species' columns,
'subfamily' and 'common_name' are optional. Other columns are ignored.

Files are rewritten atomically, every run with the same input produces
identical output.

Examples:
  taxseed generate
  taxseed generate -i NACC_list_species.csv -o seeds
  taxseed generate --dialect postgres --test-size 50
  taxseed generate -f json`,
		Aliases: []string{"gen"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runGenerate(cmd, input, outDir, dialect, testSize, source, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	generateCmd.Flags().StringVarP(
		&input, "input", "i", "", "path to the CSV checklist",
	)
	generateCmd.Flags().StringVarP(
		&outDir, "out-dir", "o", "", "directory for generated files",
	)
	generateCmd.Flags().StringVarP(
		&dialect, "dialect", "d", "", "SQL dialect: sqlite or postgres",
	)
	generateCmd.Flags().IntVarP(
		&testSize, "test-size", "t", 0, "number of species in the test subset",
	)
	generateCmd.Flags().StringVar(
		&source, "source", "", "checklist name used in file headers",
	)
	formatFlag(generateCmd, &format)

	return generateCmd
}

func runGenerate(
	cmd *cobra.Command,
	input, outDir, dialect string,
	testSize int,
	source, format string,
) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	var genOpts []config.Option
	flags := cmd.Flags()
	if flags.Changed("input") {
		genOpts = append(genOpts, config.OptInputPath(input))
	}
	if flags.Changed("out-dir") {
		genOpts = append(genOpts, config.OptOutputDir(outDir))
	}
	if flags.Changed("dialect") {
		genOpts = append(genOpts, config.OptOutputDialect(dialect))
	}
	if flags.Changed("test-size") {
		genOpts = append(genOpts, config.OptOutputTestSize(testSize))
	}
	if flags.Changed("source") {
		genOpts = append(genOpts, config.OptInputSource(source))
	}
	cfg.Update(genOpts)

	ctx := context.Background()
	res, err := iogenerate.New(cfg).Generate(ctx)
	if err != nil {
		return err
	}

	if err = printReport(cmd.OutOrStdout(), format, res); err != nil {
		return err
	}

	if format != formatText {
		return nil
	}
	gn.Info(`Next steps:
	 - Run '<em>taxseed load</em>' to load the test subset and sightings
	 - Or execute the files with your database client`)
	return nil
}
