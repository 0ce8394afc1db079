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
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/internal/ioschema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create corpus store schema",
		Long: `Create the corpus store schema from scratch.

This command:
  1. Connects to the store (SQLite file or PostgreSQL)
  2. Checks for existing tables and prompts for confirmation
  3. Creates the verses, words and import_runs tables
     (GORM AutoMigrate on PostgreSQL, model DDL on SQLite)

Use --force to skip confirmation and drop existing tables.

Examples:
  gegraptai create
  gegraptai create --force
  gegraptai create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCreate(cmd, args, forceCreate)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(
	cmd *cobra.Command,
	_ []string,
	force bool,
) error {
	ctx := context.Background()

	op, err := connect(ctx, false)
	if err != nil {
		return err
	}
	defer op.Close()
	printConnected(storeConfig())

	// Check if store has existing tables
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	// Handle existing tables
	if hasTables {
		if !force {
			gn.Warn("\nWarning: Store contains existing tables.")
			gn.Warn("Creating schema will drop ALL existing verses and words.")
			fmt.Print("\nDo you want to continue? (yes/no): ")

			ok, err := confirm(cmd)
			if err != nil {
				gn.Warn("Failed to read user input")
				return err
			}
			if !ok {
				gn.Info("Aborted. No changes made.")
				return nil
			}
		} else {
			gn.Info("Dropping all existing tables (--force enabled)...")
		}

		if err = op.DropAllTables(ctx); err != nil {
			return err
		}
		gn.Info("All tables dropped")
	}

	sm := ioschema.NewManager(op)

	gn.Info("Creating schema...")
	if err = sm.Create(ctx); err != nil {
		return err
	}

	gn.Info("\nCorpus store schema creation complete!")
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'gegraptai import' to load source texts")

	return nil
}

// confirm reads a yes/no answer from the command input.
func confirm(cmd *cobra.Command) (bool, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y", nil
}
