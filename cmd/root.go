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
	"github.com/jimiaki7/gegraptai/internal/iofs"
	"github.com/jimiaki7/gegraptai/internal/iologger"
	app "github.com/jimiaki7/gegraptai/pkg"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gegraptai",
		Short:   "Gegraptai resolves biblical references and serves their verses",
		Long: `Gegraptai turns free-form biblical citations such as
"Gen 1:1-3; 5; Ex 3:14" into structured references with stable verse IDs,
and looks up the matching verses in a local corpus of the Hebrew Bible
(OSHB) and the Greek New Testament (MorphGNT).

Commands:
  - parse: Resolve citations into references and verse IDs
  - create: Create the corpus store schema
  - migrate: Update the corpus store schema
  - import: Import source texts listed in sources.yaml
  - show: Print verses of citations from the corpus store
  - books: List books and chapters

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GEGRAPTAI_*)
  3. Config file (~/.config/gegraptai/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (store.driver → GEGRAPTAI_STORE_DRIVER).

  Examples:
    GEGRAPTAI_STORE_DRIVER       sqlite or postgres
    GEGRAPTAI_STORE_PATH         SQLite corpus file
    GEGRAPTAI_STORE_HOST         PostgreSQL host
    GEGRAPTAI_LOG_LEVEL          debug, info, warn, error
    GEGRAPTAI_OUTPUT_FORMAT      text, compact, pretty, csv, tsv
    GEGRAPTAI_JOBS_NUMBER        number of workers`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gegraptai version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gegraptai")

	rootCmd.AddCommand(
		getParseCmd(),
		getCreateCmd(),
		getMigrateCmd(),
		getImportCmd(),
		getShowCmd(),
		getBooksCmd(),
	)
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
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureSourcesFile(homeDir); err != nil {
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

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// file opened above.
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
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

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GEGRAPTAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Store configuration
	v.BindEnv("store.driver", "GEGRAPTAI_STORE_DRIVER")
	v.BindEnv("store.path", "GEGRAPTAI_STORE_PATH")
	v.BindEnv("store.host", "GEGRAPTAI_STORE_HOST")
	v.BindEnv("store.port", "GEGRAPTAI_STORE_PORT")
	v.BindEnv("store.user", "GEGRAPTAI_STORE_USER")
	v.BindEnv("store.password", "GEGRAPTAI_STORE_PASSWORD")
	v.BindEnv("store.database", "GEGRAPTAI_STORE_DATABASE")
	v.BindEnv("store.ssl_mode", "GEGRAPTAI_STORE_SSL_MODE")
	v.BindEnv("store.batch_size", "GEGRAPTAI_STORE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "GEGRAPTAI_LOG_LEVEL")
	v.BindEnv("log.format", "GEGRAPTAI_LOG_FORMAT")
	v.BindEnv("log.destination", "GEGRAPTAI_LOG_DESTINATION")

	// Output configuration
	v.BindEnv("output.format", "GEGRAPTAI_OUTPUT_FORMAT")

	// General configuration
	v.BindEnv("jobs_number", "GEGRAPTAI_JOBS_NUMBER")

	v.AutomaticEnv()
}
