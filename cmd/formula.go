package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelqty/internal/diagram"
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/logger"
	"github.com/alexiusacademia/steelqty/internal/profile"
)

var (
	formulaAll    bool
	formulaPrefix bool
)

var formulaCmd = &cobra.Command{
	Use:   "formula <profile text>",
	Short: "Print area, weight and stiffener formulas for a profile",
	Long: `Parse a profile text and print its formulas with their values.

Area is the painted surface per metre of member (m²/m), weight is the mass
per metre (kg/m). The stiffener is the plate that fits between the flanges
or inside the wall, in plate notation.

Accuracy levels:
  roughly    ignores thickness corrections where the family allows it
  precisely  subtracts the thickness corrections
  gbdata     quotes the GB table value of the matched catalog record

Examples:
  steelqty formula HW200*200
  steelqty formula "2L100*120*4" --accuracy precisely --exclude-top
  steelqty formula "2PL14*400*500-PLO14*250" --all
  steelqty formula B400*200*10*12 --round 3 --pi num`,
	Args: cobra.ExactArgs(1),
	RunE: runFormula,
}

func init() {
	rootCmd.AddCommand(formulaCmd)

	formulaCmd.Flags().Bool("exclude-top", false, "Leave the top face out of the surface area")
	formulaCmd.Flags().Bool("truncate", true, "Floor stiffener dimensions to whole millimetres")
	formulaCmd.Flags().BoolVar(&formulaAll, "all", false, "Show every accuracy level")
	formulaCmd.Flags().BoolVar(&formulaPrefix, "prefix", true, "Prefix formulas with =")

	if err := v.BindPFlag("formula.truncate_stiffener", formulaCmd.Flags().Lookup("truncate")); err != nil {
		panic(err)
	}
}

func runFormula(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	acc, err := appConfig.AccuracyLevel()
	if err != nil {
		return err
	}

	p := profile.New()
	p.Style = appConfig.Style()
	p.RoundDigits = appConfig.Formula.RoundDigits
	if err := p.SetText(args[0]); err != nil {
		logger.Logger.Debugw("parse failed", logger.FieldText, args[0], logger.FieldError, err)
		return err
	}
	logger.Logger.Debugw("parsed", logger.FieldText, p.Text(), logger.FieldFamily, p.Family().String())

	excludeTop := boolFlag(cmd, "exclude-top", appConfig.Formula.ExcludeTop)
	truncate := appConfig.Formula.TruncateStiffener

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     STEEL PROFILE QUANTITY FORMULAS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Profile:\t%s\n", p.Text())
	fmt.Fprintf(w, "  Family:\t%s\n", p.Family())
	fmt.Fprintf(w, "  Density:\t%s kg/m³\n", p.Style.Rho())
	if excludeTop {
		fmt.Fprintf(w, "  Top face:\texcluded\n")
	}
	w.Flush()
	fmt.Fprintln(out)

	if formulaAll {
		printAllAccuracies(out, p, excludeTop)
	} else {
		printFormula(out, "AREA (m²/m):", p.AreaFormula(acc, excludeTop), acc)
		printFormula(out, "WEIGHT (kg/m):", p.WeightFormula(acc), acc)
	}

	stiffener := p.StiffenerProfileText(truncate)
	fmt.Fprintln(out, "STIFFENER:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if stiffener == "" {
		fmt.Fprintln(out, "  (none for this family)")
	} else {
		fmt.Fprintf(out, "  %s\n", stiffener)
	}
	fmt.Fprintln(out)

	area, _ := evalOrBlank(p.AreaFormula(acc, excludeTop))
	weight, _ := evalOrBlank(p.WeightFormula(acc))
	fmt.Fprint(out, diagram.DrawSummaryBox(p.Text(), []string{
		fmt.Sprintf("Accuracy: %s", acc),
		fmt.Sprintf("Area:     %s m²/m", area),
		fmt.Sprintf("Weight:   %s kg/m", weight),
	}))
	fmt.Fprintln(out)
	return nil
}

func printFormula(out io.Writer, title, expr string, acc formula.Accuracy) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if expr == "" {
		fmt.Fprintf(w, "  Formula:\t(not available at %s accuracy)\n", acc)
	} else {
		value, _ := evalOrBlank(expr)
		fmt.Fprintf(w, "  Formula:\t%s\n", withPrefix(expr))
		fmt.Fprintf(w, "  Value:\t%s\n", value)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printAllAccuracies(out io.Writer, p *profile.Profile, excludeTop bool) {
	fmt.Fprintln(out, "FORMULAS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Accuracy\tQuantity\tValue\tFormula\n")
	fmt.Fprintf(w, "  ────────\t────────\t─────\t───────\n")
	for _, acc := range []formula.Accuracy{formula.Roughly, formula.Precisely, formula.GBData} {
		for _, q := range []struct {
			name string
			expr string
		}{
			{"area", p.AreaFormula(acc, excludeTop)},
			{"weight", p.WeightFormula(acc)},
		} {
			value, _ := evalOrBlank(q.expr)
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", acc, q.name, value, withPrefix(q.expr))
		}
	}
	w.Flush()
	fmt.Fprintln(out)
}

// boolFlag returns the flag when it was given on the command line and the
// configured value otherwise. Used for flags that several commands share.
func boolFlag(cmd *cobra.Command, name string, configured bool) bool {
	if !cmd.Flags().Changed(name) {
		return configured
	}
	b, err := cmd.Flags().GetBool(name)
	if err != nil {
		return configured
	}
	return b
}

func withPrefix(expr string) string {
	if expr == "" || !formulaPrefix {
		return expr
	}
	return "=" + expr
}

// evalOrBlank formats the value of expr, or "-" when there is nothing to show.
func evalOrBlank(expr string) (string, bool) {
	if strings.TrimSpace(expr) == "" {
		return "-", false
	}
	v, err := formula.Eval(expr)
	if err != nil {
		logger.Logger.Warnw("formula did not evaluate", "formula", expr, logger.FieldError, err)
		return "?", false
	}
	return fmt.Sprintf("%.4f", v), true
}
