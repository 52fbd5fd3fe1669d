// Package batch applies the formula engine to a column of profile texts in a
// CSV file, writing each formula a fixed number of columns away from its
// input. It mirrors how a spreadsheet range is filled: unrecognised texts are
// skipped and occupied cells are left alone unless overwriting is enabled.
package batch

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexiusacademia/steelqty/internal/config"
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/logger"
	"github.com/alexiusacademia/steelqty/internal/profile"
)

// Options configures a Processor.
type Options struct {
	Column    int // zero-based input column
	Offset    int // target column is Column+Offset
	HasHeader bool

	Output      string // config.OutputArea, OutputWeight or OutputStiffener
	Accuracy    formula.Accuracy
	ExcludeTop  bool
	Truncate    bool
	Style       formula.Style
	RoundDigits int

	FormulaPrefix bool // prefix formulas with "="
	Overwrite     bool
	CacheSize     int // 0 disables the parse cache
}

// OptionsFromConfig fills everything except Column and HasHeader.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	acc, err := cfg.AccuracyLevel()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Offset:        cfg.Batch.Offset,
		Output:        cfg.Batch.Output,
		Accuracy:      acc,
		ExcludeTop:    cfg.Formula.ExcludeTop,
		Truncate:      cfg.Formula.TruncateStiffener,
		Style:         cfg.Style(),
		RoundDigits:   cfg.Formula.RoundDigits,
		FormulaPrefix: cfg.Batch.FormulaPrefix,
		Overwrite:     cfg.Batch.Overwrite,
		CacheSize:     cfg.Batch.CacheSize,
	}, nil
}

// Target returns the zero-based output column.
func (o Options) Target() int { return o.Column + o.Offset }

// parsed is a cache entry. Failures are cached too, since a bad text in one
// row tends to be repeated further down.
type parsed struct {
	shape profile.Shape
	err   error
}

// Processor fills one CSV column with formulas. Shapes are immutable, so
// cached parses are shared between rows.
type Processor struct {
	opts  Options
	cache *lru.Cache[string, parsed]
}

// NewProcessor validates opts and allocates the parse cache.
func NewProcessor(opts Options) (*Processor, error) {
	if opts.Column < 0 {
		return nil, errors.Newf("input column must be >= 0, got %d", opts.Column)
	}
	if opts.Offset == 0 {
		return nil, errors.New("offset cannot be 0")
	}
	if opts.Target() < 0 {
		return nil, errors.Newf("offset %d moves the output before the first column", opts.Offset)
	}
	switch opts.Output {
	case config.OutputArea, config.OutputWeight, config.OutputStiffener:
	default:
		return nil, errors.Newf("unknown output %q", opts.Output)
	}

	p := &Processor{opts: opts}
	if opts.CacheSize > 0 {
		c, err := lru.New[string, parsed](opts.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "parse cache")
		}
		p.cache = c
	}
	return p, nil
}

// Process reads CSV from r and writes the filled table to w.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) (*Summary, error) {
	in := csv.NewReader(r)
	in.FieldsPerRecord = -1
	out := csv.NewWriter(w)

	sum := &Summary{Output: p.opts.Output, Accuracy: p.opts.Accuracy.String()}
	target := p.opts.Target()

	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		record, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sum, errors.Wrapf(err, "read row %d", row)
		}
		for len(record) <= target {
			record = append(record, "")
		}

		if !(row == 1 && p.opts.HasHeader) {
			p.fill(record, row, sum)
		}
		if err := out.Write(record); err != nil {
			return sum, errors.Wrapf(err, "write row %d", row)
		}
	}

	out.Flush()
	if err := out.Error(); err != nil {
		return sum, errors.Wrap(err, "flush output")
	}

	logger.Logger.Infow("batch finished",
		logger.FieldOutput, sum.Output,
		logger.FieldCount, sum.Processed,
		"written", sum.Written,
		"skipped", sum.Skipped,
		"kept", sum.Kept)
	return sum, nil
}

func (p *Processor) fill(record []string, row int, sum *Summary) {
	target := p.opts.Target()

	var text string
	if p.opts.Column < len(record) {
		text = strings.TrimSpace(record[p.opts.Column])
	}
	if text == "" {
		sum.Blank++
		return
	}
	sum.Processed++

	shape, err := p.parse(text)
	if err != nil {
		sum.Skipped++
		sum.Mismatches = append(sum.Mismatches, Mismatch{Row: row, Text: text, Reason: reason(err)})
		logger.Logger.Debugw("skipping unrecognised text",
			logger.FieldRow, row,
			logger.FieldText, text,
			logger.FieldError, err)
		return
	}

	if record[target] != "" && !p.opts.Overwrite {
		sum.Kept++
		return
	}

	value := p.render(shape)
	if value == "" {
		sum.Empty++
		return
	}
	if p.opts.FormulaPrefix && p.opts.Output != config.OutputStiffener {
		value = "=" + value
	}
	record[target] = value
	sum.Written++
	logger.Logger.Debugw("filled",
		logger.FieldRow, row,
		logger.FieldText, text,
		logger.FieldFamily, shape.Family().String())
}

func (p *Processor) parse(text string) (profile.Shape, error) {
	if p.cache != nil {
		if e, ok := p.cache.Get(text); ok {
			return e.shape, e.err
		}
	}
	s, err := profile.Parse(text)
	if p.cache != nil {
		p.cache.Add(text, parsed{shape: s, err: err})
	}
	return s, err
}

func (p *Processor) render(s profile.Shape) string {
	switch p.opts.Output {
	case config.OutputWeight:
		return formula.WithRound(s.Weight(p.opts.Accuracy, p.opts.Style), p.opts.RoundDigits)
	case config.OutputStiffener:
		return s.Stiffener(p.opts.Truncate)
	default:
		return formula.WithRound(s.Area(p.opts.Accuracy, p.opts.ExcludeTop, p.opts.Style), p.opts.RoundDigits)
	}
}

// CacheLen reports how many distinct texts are cached.
func (p *Processor) CacheLen() int {
	if p.cache == nil {
		return 0
	}
	return p.cache.Len()
}

func reason(err error) string {
	var m *profile.MismatchedProfileTextError
	if errors.As(err, &m) && m.Reason != "" {
		return m.Reason
	}
	return err.Error()
}
