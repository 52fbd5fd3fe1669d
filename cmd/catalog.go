package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/steelqty/internal/catalog"
)

var (
	catalogFormat string
	catalogFilter string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [table]",
	Short: "List the GB reference tables",
	Long: `List the built-in reference tables, or the rows of one table.

Tables:
  HW, HM, HN, HT  hot-rolled H sections (GB/T 11263)
  I               hot-rolled I beams (GB/T 706)
  C               hot-rolled channels (GB/T 706)
  L               equal and unequal angles (GB/T 706)

Rows marked * are non-preferred sizes sharing a name with the nominal row.

Examples:
  steelqty catalog
  steelqty catalog HW --filter HW200
  steelqty catalog L --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogFormat, "format", "table", "Output format: table, yaml or json")
	catalogCmd.Flags().StringVar(&catalogFilter, "filter", "", "Only rows whose name starts with this prefix")
}

// catalogRow is the exported view of a catalog.Record.
type catalogRow struct {
	Name   string             `json:"name" yaml:"name"`
	Marked bool               `json:"marked,omitempty" yaml:"marked,omitempty"`
	Params map[string]float64 `json:"params" yaml:"params"`
	Weight float64            `json:"weight_kg_m" yaml:"weight_kg_m"`
	Area   float64            `json:"area_m2_m,omitempty" yaml:"area_m2_m,omitempty"`
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Table\tRows\tColumns\n")
		fmt.Fprintf(w, "  ─────\t────\t───────\n")
		for _, name := range catalog.Names() {
			t, _ := catalog.Lookup(name)
			fmt.Fprintf(w, "  %s\t%d\t%s\n", name, t.Len(), strings.Join(t.Columns, ", "))
		}
		return w.Flush()
	}

	t, ok := catalog.Lookup(strings.ToUpper(args[0]))
	if !ok {
		return errors.WithHintf(errors.Newf("unknown table %q", args[0]),
			"known tables: %s", strings.Join(catalog.Names(), ", "))
	}

	rows := catalogRows(t, strings.ToUpper(catalogFilter))
	switch catalogFormat {
	case "table":
		return printCatalogTable(out, t, rows)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rows), "encode json")
	}
	return errors.Newf("unknown format %q (want table, yaml or json)", catalogFormat)
}

func catalogRows(t *catalog.Table, prefix string) []catalogRow {
	rows := []catalogRow{}
	// rows repeated under another name are listed once
	for _, r := range catalog.Unique(t.Records) {
		if !strings.HasPrefix(r.Name, prefix) {
			continue
		}
		params := make(map[string]float64, len(r.Params))
		for i, col := range t.Columns {
			if i < len(r.Params) {
				params[col] = r.Params[i]
			}
		}
		rows = append(rows, catalogRow{
			Name:   r.Name,
			Marked: r.Marked,
			Params: params,
			Weight: r.Weight,
			Area:   r.Area,
		})
	}
	return rows
}

func printCatalogTable(out io.Writer, t *catalog.Table, rows []catalogRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Name\t")
	for _, col := range t.Columns {
		fmt.Fprintf(w, "%s\t", col)
	}
	fmt.Fprintf(w, "kg/m\tm²/m\t\n")

	for _, r := range rows {
		name := r.Name
		if r.Marked {
			name += " *"
		}
		fmt.Fprintf(w, "  %s\t", name)
		for _, col := range t.Columns {
			fmt.Fprintf(w, "%g\t", r.Params[col])
		}
		area := "-"
		if r.Area > 0 {
			area = fmt.Sprintf("%.3f", r.Area)
		}
		fmt.Fprintf(w, "%.3f\t%s\t\n", r.Weight, area)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n  %d of %d rows\n", len(rows), t.Len())
	return nil
}
