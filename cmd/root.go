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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/internal/iofs"
	"github.com/gnames/taxseed/internal/iologger"
	taxseed "github.com/gnames/taxseed/pkg"
	"github.com/gnames/taxseed/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf(
			"version: %s\nbuild:   %s", taxseed.Version, taxseed.Build,
		),
		Use:   "taxseed",
		Short: "taxseed turns a species checklist into SQL seed files",
		Long: `taxseed reads a species checklist in CSV format and creates SQL
seed files for a taxa table and a sightings table.

Commands:
  - generate: write the full taxonomy, a test subset and sample sightings
  - load: execute generated files against SQLite or PostgreSQL

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (TAXSEED_*)
  3. Config file (~/.config/taxseed/config.yaml)
  4. Built-in defaults

Nested fields use underscores (output.dir is TAXSEED_OUTPUT_DIR).`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "taxseed version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for taxseed")

	rootCmd.AddCommand(getGenerateCmd(), getLoadCmd())
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info(
		"Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
	)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	// start from defaults, so keys missing in an old config file keep them
	res := config.New()
	if err = v.Unmarshal(res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return res, nil
}

// envKeys are config keys that can be set by TAXSEED_* variables. They
// match the fields of config.ToOptions().
var envKeys = []string{
	"input.path",
	"input.kingdom",
	"input.phylum",
	"input.class",
	"input.source",

	"output.dir",
	"output.dialect",
	"output.test_size",
	"output.full_file",
	"output.test_file",
	"output.sightings_file",

	"sample.per_family",
	"sample.max_species",
	"sample.trip_records",
	"sample.trip_size",
	"sample.casual_records",

	"database.engine",
	"database.path",
	"database.host",
	"database.port",
	"database.user",
	"database.password",
	"database.database",
	"database.ssl_mode",

	"log.level",
	"log.format",
	"log.destination",

	"jobs_number",
}

func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("TAXSEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		_ = v.BindEnv(key, envName(key))
	}

	v.AutomaticEnv()
}

// envName converts a config key to its environment variable name.
func envName(key string) string {
	key = strings.ReplaceAll(key, ".", "_")
	return "TAXSEED_" + strings.ToUpper(key)
}
