package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelqty/internal/grammar"
	"github.com/alexiusacademia/steelqty/internal/logger"
	"github.com/alexiusacademia/steelqty/internal/profile"
)

var classifyListFamilies bool

var classifyCmd = &cobra.Command{
	Use:   "classify [profile text...]",
	Short: "Show which section family a profile text belongs to",
	Long: `Classify each profile text and report whether its family parser accepts it.

The leading identifier picks the family. C and 2C are shared by rolled and
lipped channels and are told apart by the number of dimensions; PL texts with
a quantity or several terms are composite plates.

Examples:
  steelqty classify HW200*200 C160*60*20*3 2PL14*400*500-PLO14*250
  steelqty classify --families`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVar(&classifyListFamilies, "families", false, "List every family tag")
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if classifyListFamilies {
		for _, f := range profile.Families() {
			fmt.Fprintln(out, f)
		}
		return nil
	}
	if len(args) == 0 {
		return errors.New("no profile text given")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Text\tNormalized\tFamily\tStatus\n")
	fmt.Fprintf(w, "  ────\t──────────\t──────\t──────\n")
	for _, text := range args {
		family, err := profile.Classify(text)
		status := "ok"
		if err == nil {
			_, err = profile.ParseAs(family, text)
		}
		if err != nil {
			status = reasonOf(err)
			logger.Logger.Debugw("classify failed", logger.FieldText, text, logger.FieldError, err)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", text, grammar.Normalize(text), family, status)
	}
	return w.Flush()
}

// reasonOf shortens a parse error to its reason for tabular output.
func reasonOf(err error) string {
	var m *profile.MismatchedProfileTextError
	if errors.As(err, &m) {
		return m.Reason
	}
	return err.Error()
}
