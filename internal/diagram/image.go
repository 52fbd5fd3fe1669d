package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/steelqty/internal/section"
)

// ExportSection draws the outline with its centroid to an image file. The
// format follows the extension: .png, .svg or .pdf; anything else gets .png
// appended.
func ExportSection(s *section.Section, filename string) error {
	props := s.CalculateProperties()

	p := plot.New()
	p.Title.Text = s.Name
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	// the backends treat rings wound against the outer ring as holes
	rings := []plotter.XYer{ring(s.Outer, true)}
	for _, h := range s.Holes {
		rings = append(rings, ring(h, false))
	}
	poly, err := plotter.NewPolygon(rings...)
	if err != nil {
		return errors.Wrap(err, "outline polygon")
	}
	poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(1.5)
	p.Add(poly)

	centroid, err := plotter.NewScatter(plotter.XYs{{X: props.CentroidX, Y: props.CentroidY}})
	if err != nil {
		return errors.Wrap(err, "centroid marker")
	}
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	centroid.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	p.Add(centroid)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: props.CentroidX, Y: props.CentroidY}},
		Labels: []string{fmt.Sprintf(" A=%.0fmm²", props.Area)},
	})
	if err != nil {
		return errors.Wrap(err, "area label")
	}
	p.Add(label)

	// keep the aspect ratio square-ish around the outline
	margin := 0.1 * max(props.Width, props.Height)
	p.X.Min, p.X.Max = props.MinX-margin, props.MaxX+margin
	p.Y.Min, p.Y.Max = props.MinY-margin, props.MaxY+margin

	width := 6 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	return errors.Wrapf(p.Save(width, height, filename), "save %s", filename)
}

// ring converts a ring to plot coordinates, wound counter-clockwise when ccw
// is set and clockwise otherwise.
func ring(pts []section.Point, ccw bool) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, v := range pts {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	if (signedArea(pts) > 0) != ccw {
		for i, j := 0, len(xys)-1; i < j; i, j = i+1, j-1 {
			xys[i], xys[j] = xys[j], xys[i]
		}
	}
	return xys
}

func signedArea(pts []section.Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}
