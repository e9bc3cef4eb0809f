package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/pair/internal/scenario"
	"github.com/pengelbrecht/pair/internal/styles"
)

type checkOptions struct {
	file  string
	json  bool
	watch bool
}

func (a *app) newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run arithmetic scenarios",
		Long: `Run arithmetic scenarios and report pass/fail.

Scenarios come from --file, else the "scenarios" entry in .pair.json,
else the built-in set. Exits 1 if any scenario fails.

Scenario files look like:
  {"version": 1, "scenarios": [
    {"name": "sum", "a": 1, "b": "2", "op": "sum", "want": 3}
  ]}

Supported ops: sum, difference, product, a.

Examples:
  pair check                         # Built-in scenarios
  pair check --file checks.json      # Scenarios from a file
  pair check --file checks.json --watch
  pair check --json                  # Output report as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "scenario file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output as JSON")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-run when the scenario file changes")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts checkOptions) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	path := opts.file
	if path == "" && a.cfg.GetScenarios() != "" {
		path = a.cfg.GetScenarios()
		if !filepath.IsAbs(path) {
			path = filepath.Join(a.configDir, path)
		}
	}
	if opts.watch && path == "" {
		return NewExitError(ExitUsage, "--watch requires a scenario file")
	}

	ctx := cmd.Context()
	report, err := a.checkOnce(ctx, path, opts.json)
	if err != nil {
		return err
	}

	if opts.watch {
		report, err = a.watch(ctx, path, opts.json, report)
		if err != nil {
			return err
		}
	}

	if !report.OK() {
		return NewExitError(ExitFailed, "%d of %d scenarios failed", report.Failed(), len(report.Results))
	}
	return nil
}

func (a *app) loadScenarios(path string) ([]scenario.Scenario, error) {
	if path == "" {
		return scenario.Seed(), nil
	}
	scenarios, err := scenario.Load(path)
	if err != nil {
		return nil, NewExitError(ExitConfig, "failed to load scenarios: %w", err)
	}
	a.logger.Debug("scenarios loaded", "path", path, "count", len(scenarios))
	return scenarios, nil
}

func (a *app) checkOnce(ctx context.Context, path string, asJSON bool) (scenario.Report, error) {
	scenarios, err := a.loadScenarios(path)
	if err != nil {
		return scenario.Report{}, err
	}

	report := scenario.NewRunner(scenario.WithLogger(a.logger)).Run(ctx, scenarios)
	if err := a.printReport(report, asJSON); err != nil {
		return report, err
	}
	return report, nil
}

// watch re-runs the scenario file on every change until interrupted and
// returns the most recent report. If the file was unreadable or gone at
// that point, the load error is returned instead.
func (a *app) watch(ctx context.Context, path string, asJSON bool, last scenario.Report) (scenario.Report, error) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := scenario.NewWatcher(path, scenario.WithDebounce(a.cfg.Watch.GetDebounce()))
	if err := w.Start(); err != nil {
		return last, NewExitError(ExitConfig, "failed to watch %s: %w", path, err)
	}
	defer w.Stop()

	if !asJSON {
		fmt.Fprintln(a.stdout, a.theme.RenderHeader(fmt.Sprintf("Watching %s (Ctrl-C to stop)", path)))
	}

	var reloadErr error
	for {
		select {
		case <-ctx.Done():
			return last, reloadErr

		case err := <-w.Errors():
			a.logger.Warn("watch error", "path", path, "error", err)

		case ev, ok := <-w.Events():
			if !ok {
				return last, reloadErr
			}
			if ev.Type == scenario.Removed {
				a.logger.Warn("scenario file removed", "path", path)
				reloadErr = NewExitError(ExitConfig, "scenario file removed: %s", path)
				continue
			}

			// The file may be mid-edit; report and keep watching.
			report, err := a.checkOnce(ctx, path, asJSON)
			if err != nil {
				fmt.Fprintf(a.stderr, "Error: %v\n", err)
				reloadErr = err
				continue
			}
			reloadErr = nil
			last = report
		}
	}
}

type reportJSON struct {
	OK     bool            `json:"ok"`
	Passed int             `json:"passed"`
	Failed int             `json:"failed"`
	Report scenario.Report `json:"report"`
}

func (a *app) printReport(report scenario.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(a.stdout)
		payload := reportJSON{
			OK:     report.OK(),
			Passed: report.Passed(),
			Failed: report.Failed(),
			Report: report,
		}
		if err := enc.Encode(payload); err != nil {
			return NewExitError(ExitOutput, "failed to encode json: %w", err)
		}
		return nil
	}

	nameWidth := 0
	for _, res := range report.Results {
		if n := len(res.Scenario.Name); n > nameWidth {
			nameWidth = n
		}
	}

	for _, res := range report.Results {
		s := res.Scenario
		line := fmt.Sprintf("  %s  %s  %s",
			a.theme.RenderStatus(res.Passed),
			styles.PadRight(s.Name, nameWidth),
			a.describe(res))
		fmt.Fprintln(a.stdout, line)
	}

	fmt.Fprintln(a.stdout)
	summary := "  " + a.theme.RenderSummary(report.Passed(), report.Failed())
	if report.Incomplete {
		summary += a.theme.RenderDim(" (interrupted)")
	}
	if _, err := fmt.Fprintln(a.stdout, summary); err != nil {
		return NewExitError(ExitOutput, "failed to write report: %w", err)
	}
	return nil
}

// describe renders the computation behind a result, e.g. `(1, 2) sum = 3`.
func (a *app) describe(res scenario.Result) string {
	s := res.Scenario
	inputs := fmt.Sprintf("(%s, %s) %s", formatInput(s.A), formatInput(s.B), s.Op)
	if res.Err != nil {
		return inputs + a.theme.RenderDim(": "+res.Error)
	}
	if res.Passed {
		return fmt.Sprintf("%s = %d", inputs, res.Got)
	}
	return fmt.Sprintf("%s = %d, want %d", inputs, res.Got, s.Want)
}

func formatInput(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
