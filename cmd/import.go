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
	"strings"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/internal/ioimport"
	"github.com/jimiaki7/gegraptai/internal/iosources"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/sources"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getImportCmd() *cobra.Command {
	var (
		sourceFilter string
		force        bool
	)

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import source texts into the corpus store",
		Long: `Import verses and words from the sources listed in sources.yaml.

This command:
  1. Connects to the store using configuration settings
  2. Reads sources.yaml to discover source files
  3. Decodes MorphGNT text files (optionally .xz) and OSHB OSIS XML files
  4. Writes verses and words, one transaction per file
  5. Reports progress and statistics

Sources are configured in: ~/.config/gegraptai/sources.yaml
Files that did not change since the last import are skipped,
use --force to import them again.

Source filter syntax:
  1,3    sources 1 and 3
  2-5    sources 2 to 5
  -3     sources up to 3
  2-     sources from 2

Examples:
  # Import all sources from sources.yaml
  gegraptai import

  # Import specific sources only
  gegraptai import --sources 1
  gegraptai import -s 1,2

  # Import again even when files did not change
  gegraptai import --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runImport(cmd, sourceFilter, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	importCmd.Flags().StringVarP(
		&sourceFilter, "sources", "s", "",
		"source IDs to import, for example 1,3 or 2-5 (empty = all)",
	)
	importCmd.Flags().BoolVar(
		&force, "force", false,
		"import files even when they did not change",
	)

	return importCmd
}

func runImport(
	cmd *cobra.Command,
	sourceFilter string,
	force bool,
) error {
	ctx := context.Background()

	var importOpts []config.Option
	if strings.TrimSpace(sourceFilter) != "" {
		ids, err := sourceIDs(sourceFilter)
		if err != nil {
			return err
		}
		importOpts = append(importOpts, config.OptImportSourceIDs(ids))
	}
	if cmd.Flags().Changed("force") {
		importOpts = append(importOpts, config.OptImportForce(force))
	}
	if len(importOpts) > 0 {
		cfg.Update(importOpts)
	}

	op, err := connect(ctx, true)
	if err != nil {
		return err
	}
	defer op.Close()
	printConnected(storeConfig())

	importer := ioimport.New(op, nil)

	gn.Info("Starting import from sources.yaml...")
	if err = importer.Import(ctx, cfg); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>gegraptai show "John 3:16"</em>' to read verses
	 - Run '<em>gegraptai books</em>' to list books
`)
	return nil
}

// sourceIDs resolves the filter against the sources in sources.yaml.
func sourceIDs(filter string) ([]int, error) {
	sourcesConfig, err := iosources.New(cfg).Load()
	if err != nil {
		return nil, err
	}

	ids, warnings, err := sources.FilterIDs(sourcesConfig.Sources, filter)
	for _, w := range warnings {
		gn.Warn(w)
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}
