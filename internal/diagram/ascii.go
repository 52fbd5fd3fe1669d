package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/steelqty/internal/section"
)

// ASCIIOptions controls the raster size. Terminal cells are about twice as
// tall as they are wide, so rows are sampled at half the column density.
type ASCIIOptions struct {
	Columns int // default 40
	MaxRows int // default 30
}

// DrawASCIISection rasterises the outline: material is drawn as █ and
// everything else as blank.
func DrawASCIISection(s *section.Section, opts ASCIIOptions) string {
	if opts.Columns <= 0 {
		opts.Columns = 40
	}
	if opts.MaxRows <= 0 {
		opts.MaxRows = 30
	}

	props := s.CalculateProperties()
	if props.Width <= 0 || props.Height <= 0 {
		return ""
	}

	// Scale factors for ASCII drawing
	cell := props.Width / float64(opts.Columns)
	rows := int(props.Height / (2 * cell))
	if rows > opts.MaxRows {
		rows = opts.MaxRows
		cell = props.Height / float64(2*rows)
	}
	if rows < 1 {
		rows = 1
	}
	cols := int(props.Width/cell + 0.5)
	if cols < 1 {
		cols = 1
	}
	dy := props.Height / float64(rows)
	dx := props.Width / float64(cols)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", s.Name))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(s.Name)))))

	for r := 0; r < rows; r++ {
		// sample at the middle of each cell, top row first
		y := props.MaxY - (float64(r)+0.5)*dy
		sb.WriteString("  ")
		for c := 0; c < cols; c++ {
			x := props.MinX + (float64(c)+0.5)*dx
			if s.Inside(x, y) {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n  %.1f mm wide × %.1f mm high\n", props.Width, props.Height))
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads by runes; %-*s counts bytes and breaks on ² or ×.
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
