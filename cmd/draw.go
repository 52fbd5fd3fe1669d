package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelqty/internal/diagram"
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/logger"
	"github.com/alexiusacademia/steelqty/internal/profile"
	"github.com/alexiusacademia/steelqty/internal/section"
)

var (
	drawColumns  int
	drawExport   string
	drawSaveJSON string
	drawLoadJSON string
	drawNoASCII  bool
)

var drawCmd = &cobra.Command{
	Use:   "draw [profile text]",
	Short: "Draw the cross-section outline of a profile",
	Long: `Build the cross-section outline of a profile, print its geometric
properties and draw it as ASCII art or export it as an image.

The net area of the outline times the density is compared with the value of
the PRECISELY weight formula. Root and corner radii are not drawn, so rolled
sections come out slightly lighter than their GB weight.

Composite plates and paired lipped channels have no single outline.

Examples:
  steelqty draw HW200*200
  steelqty draw B400*200*10*12 -o box.svg
  steelqty draw "2L100*120*4" --save 2l.json
  steelqty draw --load 2l.json -o 2l.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDraw,
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().IntVar(&drawColumns, "columns", 40, "Width of the ASCII drawing in characters")
	drawCmd.Flags().StringVarP(&drawExport, "out", "o", "", "Export the drawing to a file (png, svg, pdf)")
	drawCmd.Flags().StringVar(&drawSaveJSON, "save", "", "Save the outline as JSON")
	drawCmd.Flags().StringVar(&drawLoadJSON, "load", "", "Draw an outline saved with --save instead of parsing text")
	drawCmd.Flags().BoolVar(&drawNoASCII, "no-ascii", false, "Skip the ASCII drawing")
}

func runDraw(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var (
		sec   *section.Section
		shape profile.Shape
		err   error
	)
	switch {
	case drawLoadJSON != "":
		sec, err = section.LoadFromFile(drawLoadJSON)
	case len(args) == 1:
		shape, err = profile.Parse(args[0])
		if err == nil {
			sec, err = section.FromShape(args[0], shape)
		}
	default:
		return errors.New("give a profile text or --load")
	}
	if err != nil {
		return err
	}
	if err := sec.Validate(); err != nil {
		return err
	}

	props := sec.CalculateProperties()
	density := appConfig.Style().Density

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     STEEL SECTION OUTLINE")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SECTION GEOMETRY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%s\n", sec.Name)
	if sec.Family != "" {
		fmt.Fprintf(w, "  Family:\t%s\n", sec.Family)
	}
	fmt.Fprintf(w, "  Width:\t%.1f mm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.1f mm\n", props.Height)
	fmt.Fprintf(w, "  Net Area:\t%.1f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid:\t(%.1f, %.1f) mm\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Perimeter:\t%.1f mm\n", props.Perimeter)
	fmt.Fprintf(w, "  Vertices:\t%d points, %d holes\n", len(sec.Outer), len(sec.Holes))
	w.Flush()
	fmt.Fprintln(out)

	lines := []string{fmt.Sprintf("Outline mass: %.3f kg/m", props.MassPerMetre(density))}
	if shape != nil {
		expr := shape.Weight(formula.Precisely, appConfig.Style())
		if value, ok := evalOrBlank(expr); ok {
			lines = append(lines, fmt.Sprintf("Formula mass: %s kg/m", value))
		}
	}

	if !drawNoASCII {
		fmt.Fprint(out, diagram.DrawASCIISection(sec, diagram.ASCIIOptions{Columns: drawColumns}))
		fmt.Fprintln(out)
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("WEIGHT CHECK", lines))
	fmt.Fprintln(out)

	if drawSaveJSON != "" {
		if err := sec.Save(drawSaveJSON); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Outline saved to %s\n", drawSaveJSON)
	}
	if drawExport != "" {
		if err := diagram.ExportSection(sec, drawExport); err != nil {
			return err
		}
		logger.Logger.Infow("diagram exported", logger.FieldFile, drawExport)
		fmt.Fprintf(out, "  Diagram exported to %s\n", drawExport)
	}
	return nil
}
