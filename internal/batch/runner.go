package batch

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/easterdate/internal/easter"
	"github.com/nao1215/easterdate/internal/log"
	"github.com/nao1215/easterdate/internal/model"
)

// Runner computes Easter dates for a range of years.
type Runner struct {
	// methods are the columns to compute, in code order.
	methods []model.DatingMethod

	// logger is used for range-level logging.
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMethods restricts the runner to the given dating methods.
// Invalid methods are ignored; an empty list keeps the default of all methods.
func WithMethods(methods ...model.DatingMethod) Option {
	return func(r *Runner) {
		var valid []model.DatingMethod
		for _, m := range methods {
			if m.IsValid() {
				valid = append(valid, m)
			}
		}
		if len(valid) > 0 {
			r.methods = valid
		}
	}
}

// NewRunner creates a Runner that computes all dating methods.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		methods: model.Methods,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = log.Discard()
	}

	return r
}

// ValidateRange checks that start and finish are supported years and that
// start does not come after finish.
func ValidateRange(start, finish int) error {
	if err := model.ValidateYear(start); err != nil {
		return fmt.Errorf("start year: %w", err)
	}
	if err := model.ValidateYear(finish); err != nil {
		return fmt.Errorf("finish year: %w", err)
	}
	if start > finish {
		return fmt.Errorf("%w: %d > %d", model.ErrInvalidRange, start, finish)
	}
	return nil
}

// Row computes the dates of a single year.
func (r *Runner) Row(year int) model.YearRow {
	row := model.YearRow{Year: year}
	for _, m := range r.methods {
		if m.AppliesTo(year) {
			row.Set(m, easter.Compute(year, m))
		}
	}
	return row
}

// Run calls fn for every year from start to finish inclusive.
// Iteration stops at the first error returned by fn.
func (r *Runner) Run(start, finish int, fn func(model.YearRow) error) error {
	if err := ValidateRange(start, finish); err != nil {
		return err
	}

	r.logger.Debug("computing easter dates",
		"start", start,
		"finish", finish,
		"methods", len(r.methods),
	)

	for year := start; year <= finish; year++ {
		if err := fn(r.Row(year)); err != nil {
			return fmt.Errorf("year %d: %w", year, err)
		}
	}

	r.logger.Debug("easter dates computed", "years", finish-start+1)
	return nil
}

// Collect returns the rows for every year from start to finish inclusive.
func (r *Runner) Collect(start, finish int) ([]model.YearRow, error) {
	if err := ValidateRange(start, finish); err != nil {
		return nil, err
	}

	rows := make([]model.YearRow, 0, finish-start+1)
	err := r.Run(start, finish, func(row model.YearRow) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
