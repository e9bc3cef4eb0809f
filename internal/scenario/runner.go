package scenario

import (
	"context"
	"log/slog"
)

// Report collects the results of a run.
type Report struct {
	Results []Result `json:"results"`

	// Incomplete is set when the run stopped before every scenario ran.
	Incomplete bool `json:"incomplete,omitempty"`
}

// Passed returns the number of passing results.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Failed returns the number of failing results.
func (r Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// OK reports whether every scenario ran and passed.
func (r Report) OK() bool {
	return !r.Incomplete && r.Failed() == 0
}

// Runner executes scenarios in order.
type Runner struct {
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for the runner.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes scenarios one at a time. If ctx is cancelled the run stops
// before the next scenario and the report is marked incomplete.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) Report {
	report := Report{Results: make([]Result, 0, len(scenarios))}

	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("run stopped", "remaining", len(scenarios)-len(report.Results), "error", err)
			report.Incomplete = true
			break
		}

		res := Run(s)
		report.Results = append(report.Results, res)

		if res.Passed {
			r.logger.Debug("scenario passed", "name", s.Name, "op", s.Op, "got", res.Got)
			continue
		}
		if res.Err != nil {
			r.logger.Warn("scenario errored", "name", s.Name, "op", s.Op, "error", res.Err)
			continue
		}
		r.logger.Warn("scenario failed", "name", s.Name, "op", s.Op, "got", res.Got, "want", s.Want)
	}

	return report
}
