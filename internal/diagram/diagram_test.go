package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/steelqty/internal/section"
)

func boxSection() *section.Section {
	return &section.Section{
		Name:  "B100*100*10*10",
		Outer: []section.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}},
		Holes: [][]section.Point{{{X: 20, Y: 20}, {X: 80, Y: 20}, {X: 80, Y: 80}, {X: 20, Y: 80}}},
	}
}

func TestDrawASCIISection(t *testing.T) {
	out := DrawASCIISection(boxSection(), ASCIIOptions{Columns: 10})

	assert.Contains(t, out, "B100*100*10*10")
	assert.Contains(t, out, "100.0 mm wide × 100.0 mm high")

	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "█") {
			rows = append(rows, line)
		}
	}
	// 10 columns over 100 mm gives 5 rows of 20 mm
	require.Len(t, rows, 5)
	assert.Equal(t, "  ██████████", rows[0])
	assert.Equal(t, "  ██      ██", rows[2])
	assert.Equal(t, "  ██████████", rows[4])
}

func TestDrawASCIISectionRowCap(t *testing.T) {
	tall := &section.Section{
		Name:  "tall",
		Outer: []section.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1000}, {X: 0, Y: 1000}},
	}
	out := DrawASCIISection(tall, ASCIIOptions{Columns: 20, MaxRows: 8})
	assert.Equal(t, 8, strings.Count(out, "█\n"))
}

func TestDrawASCIISectionEmpty(t *testing.T) {
	assert.Empty(t, DrawASCIISection(&section.Section{}, ASCIIOptions{}))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("HW200*200", []string{"Area: 6208 mm²", "Family: H"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
	assert.Contains(t, out, "Area: 6208 mm²")
}

func TestExportSection(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"box.png", "box.svg", filepath.Join("nested", "box")} {
		target := filepath.Join(dir, name)
		require.NoError(t, ExportSection(boxSection(), target), name)

		if filepath.Ext(target) == "" {
			target += ".png"
		}
		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRingWinding(t *testing.T) {
	cw := []section.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	assert.Negative(t, signedArea(cw))

	out := ring(cw, true)
	back := make([]section.Point, len(out))
	for i, xy := range out {
		back[i] = section.Point{X: xy.X, Y: xy.Y}
	}
	assert.Positive(t, signedArea(back))

	kept := ring(cw, false)
	for i, v := range cw {
		assert.Equal(t, v.X, kept[i].X)
		assert.Equal(t, v.Y, kept[i].Y)
	}
}
