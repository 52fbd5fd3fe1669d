package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/steelqty/internal/catalog"
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/profile"
)

// execute runs the root command with args and returns stdout and stderr.
// Flags are reset afterwards since cobra keeps their values between runs.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "steelqty v")
}

func TestRootBanner(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Steel Section Quantity Formulas")
}

func TestFormulaCommand(t *testing.T) {
	out, _, err := execute(t, "formula", "HW200*200")
	require.NoError(t, err)

	shape, err := profile.Parse("HW200*200")
	require.NoError(t, err)
	area := shape.Area(formula.Roughly, false, formula.DefaultStyle)

	assert.Contains(t, out, "Family:")
	assert.Contains(t, out, "AREA (m²/m):")
	assert.Contains(t, out, "="+area)
	assert.Contains(t, out, "STIFFENER:")
}

func TestFormulaCommandOptions(t *testing.T) {
	out, _, err := execute(t, "formula", "SPH100", "--pi", "num", "--round", "2", "--prefix=false")
	require.NoError(t, err)
	assert.Contains(t, out, "ROUND(")
	assert.Contains(t, out, "3.14")
	assert.NotContains(t, out, "PI()")
	assert.Contains(t, out, "(none for this family)")
}

func TestFormulaCommandAll(t *testing.T) {
	out, _, err := execute(t, "formula", "L100*10", "--all")
	require.NoError(t, err)
	for _, acc := range []string{"roughly", "precisely", "gbdata"} {
		assert.Contains(t, out, acc)
	}
}

func TestFormulaCommandRejects(t *testing.T) {
	_, _, err := execute(t, "formula", "bogus")
	require.Error(t, err)
	assert.True(t, profile.IsMismatch(err))

	_, _, err = execute(t, "formula", "HW200*200", "--accuracy", "exact")
	assert.Error(t, err)
}

func TestClassifyCommand(t *testing.T) {
	out, _, err := execute(t, "classify", "HW200*200", "c160*60*20*3", "bogus")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[2], "H ")
	assert.Contains(t, lines[3], "C160*60*20*3")
	assert.Contains(t, lines[3], "CFO_CN")
	assert.Contains(t, lines[4], "UNKNOWN")

	out, _, err = execute(t, "classify", "--families")
	require.NoError(t, err)
	assert.Equal(t, len(profile.Families()), strings.Count(out, "\n"))
}

func TestCatalogCommand(t *testing.T) {
	out, _, err := execute(t, "catalog")
	require.NoError(t, err)
	for _, name := range []string{"HW", "HN", "I", "C", "L"} {
		assert.Contains(t, out, "  "+name+" ")
	}

	out, _, err = execute(t, "catalog", "hw", "--filter", "HW200", "--format", "json")
	require.NoError(t, err)
	var rows []catalogRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "HW200*200", rows[0].Name)
	assert.Equal(t, 200.0, rows[0].Params["h"])

	out, _, err = execute(t, "catalog", "L", "--filter", "L100*10", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: L100*10")

	_, _, err = execute(t, "catalog", "X")
	assert.Error(t, err)
}

func TestCatalogRowsDropRepeats(t *testing.T) {
	table := &catalog.Table{
		Name:    "HW",
		Columns: []string{"h", "b"},
		Records: []catalog.Record{
			{Name: "HW100*100", Params: []float64{100, 100}, Weight: 16.9},
			{Name: "HW100*100", Marked: true, Params: []float64{100, 100}, Weight: 16.9},
			{Name: "HW125*125", Params: []float64{125, 125}, Weight: 23.6},
		},
	}

	rows := catalogRows(table, "")
	require.Len(t, rows, 2)
	assert.False(t, rows[0].Marked)
	assert.Equal(t, "HW125*125", rows[1].Name)
	assert.Len(t, catalogRows(table, "HW125"), 1)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	summary := filepath.Join(dir, "summary.yaml")
	require.NoError(t, os.WriteFile(in, []byte("profile,weight\nL100*10,\nnothing,\n"), 0o644))

	_, _, err := execute(t, "batch", "-f", in, "-o", out, "--header",
		"--output", "weight", "--accuracy", "gbdata", "--summary", summary)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "L100*10,=15.121")

	report, err := os.ReadFile(summary)
	require.NoError(t, err)
	assert.Contains(t, string(report), "written: 1")
	assert.Contains(t, string(report), "skipped: 1")
}

func TestBatchCommandSummaryToStderr(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(in, []byte("PL300*10\n"), 0o644))

	stdout, stderr, err := execute(t, "batch", "-f", in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "PL300*10,="), stdout)
	assert.Contains(t, stderr, "output: area")
}

func TestDrawCommand(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "hw.json")
	image := filepath.Join(dir, "hw.svg")

	out, _, err := execute(t, "draw", "HW200*200", "--save", saved, "-o", image)
	require.NoError(t, err)
	assert.Contains(t, out, "6208.0 mm²")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "Formula mass:")
	assert.FileExists(t, saved)
	assert.FileExists(t, image)

	out, _, err = execute(t, "draw", "--load", saved, "--no-ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "6208.0 mm²")
	assert.NotContains(t, out, "█")

	_, _, err = execute(t, "draw", "2PL14*400*500-PLO14*250")
	assert.Error(t, err)

	_, _, err = execute(t, "draw")
	assert.Error(t, err)
}
