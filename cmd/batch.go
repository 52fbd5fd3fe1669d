package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelqty/internal/batch"
	"github.com/alexiusacademia/steelqty/internal/logger"
)

var (
	batchInput   string
	batchOutFile string
	batchColumn  int
	batchHeader  bool
	batchSummary string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Fill a CSV column with formulas for the profile texts in another",
	Long: `Read a CSV file, parse the profile text in one column and write the chosen
formula into the column at --offset from it.

Rows whose text is not recognised are skipped. A target cell that already
holds something is kept unless --overwrite is given. A summary of what was
written is printed as YAML to stderr, or saved with --summary.

Examples:
  steelqty batch -f take-off.csv --column 2 --header -o filled.csv
  steelqty batch -f take-off.csv --column 2 --output weight --offset 2
  steelqty batch -f take-off.csv --column 3 --output stiffener --offset -1`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	f := batchCmd.Flags()
	f.StringVarP(&batchInput, "file", "f", "", "Input CSV file [required]")
	f.StringVarP(&batchOutFile, "out", "o", "", "Output CSV file (default stdout)")
	f.IntVarP(&batchColumn, "column", "c", 1, "Input column, 1-based")
	f.BoolVar(&batchHeader, "header", false, "Copy the first row unchanged")
	f.StringVar(&batchSummary, "summary", "", "Write the YAML summary to this file")
	f.Int("offset", 1, "Target column relative to the input column")
	f.String("output", "area", "What to write: area, weight or stiffener")
	f.Bool("overwrite", false, "Replace non-empty target cells")
	f.Bool("exclude-top", false, "Leave the top face out of the surface area")
	batchCmd.MarkFlagRequired("file")

	for key, flag := range map[string]string{
		"batch.offset":    "offset",
		"batch.output":    "output",
		"batch.overwrite": "overwrite",
	} {
		if err := v.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	opts, err := batch.OptionsFromConfig(appConfig)
	if err != nil {
		return err
	}
	opts.Column = batchColumn - 1
	opts.HasHeader = batchHeader
	opts.ExcludeTop = boolFlag(cmd, "exclude-top", opts.ExcludeTop)

	proc, err := batch.NewProcessor(opts)
	if err != nil {
		return err
	}

	in, err := os.Open(batchInput)
	if err != nil {
		return errors.Wrapf(err, "open %s", batchInput)
	}
	defer in.Close()

	var out io.Writer = cmd.OutOrStdout()
	if batchOutFile != "" {
		file, err := os.Create(batchOutFile)
		if err != nil {
			return errors.Wrapf(err, "create %s", batchOutFile)
		}
		defer file.Close()
		out = file
	}

	logger.Logger.Infow("batch started",
		logger.FieldFile, batchInput,
		logger.FieldColumn, batchColumn,
		logger.FieldOutput, opts.Output,
		logger.FieldAccuracy, opts.Accuracy.String())

	sum, err := proc.Process(cmd.Context(), in, out)
	if err != nil {
		return err
	}

	report, err := sum.YAML()
	if err != nil {
		return err
	}
	if batchSummary != "" {
		return errors.Wrapf(os.WriteFile(batchSummary, []byte(report), 0o644), "write %s", batchSummary)
	}
	fmt.Fprint(cmd.ErrOrStderr(), report)
	return nil
}
