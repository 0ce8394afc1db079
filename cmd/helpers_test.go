package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jimiaki7/gegraptai/internal/iofs"
	"github.com/jimiaki7/gegraptai/internal/iotesting"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const johnFixture = `040316 C- -------- Οὕτως Οὕτως οὕτως οὕτως
040316 C- -------- γὰρ γάρ γάρ γάρ
040316 V- 3AAI-S-- ἠγάπησεν ἠγάπησεν ἠγάπησε(ν) ἀγαπάω
040317 C- -------- οὐ οὐ οὐ οὐ
`

// setTestConfig points the package configuration to a temporary home
// with config templates in place.
func setTestConfig(t *testing.T) {
	t.Helper()
	cfg = iotesting.GetTestConfig(t)
	homeDir = cfg.HomeDir
	require.NoError(t, iofs.EnsureConfigFile(homeDir))
}

// seedStore creates a schema in the test store and imports a MorphGNT
// fixture of John 3:16-17 into it.
func seedStore(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	setTestConfig(t)
	iotesting.CreateSchema(t, storeConfig())

	dir := filepath.Join(cfg.HomeDir, "texts")
	iotesting.WriteFile(t, dir, "64-Jn-morphgnt.txt", johnFixture)
	iotesting.WriteFile(t, config.ConfigDir(cfg.HomeDir), "sources.yaml",
		fmt.Sprintf(`sources:
  - id: 2
    format: morphgnt
    path: %s/*-morphgnt.txt
    title: SBL Greek New Testament
`, dir))

	_, err := execute(t, getImportCmd(), "")
	require.NoError(t, err)
}

// execute runs a command with arguments and standard input, returning
// what it printed.
func execute(
	t *testing.T,
	cmd *cobra.Command,
	stdin string,
	args ...string,
) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
