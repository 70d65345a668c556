package bootstrap

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// StepResult is the recorded outcome of one step.
type StepResult struct {
	StepID   StepID
	Status   Status
	Err      error
	Duration time.Duration
}

// Report collects the results of a full runner walk.
type Report struct {
	Results []StepResult
	halted  bool
}

// Result returns the recorded result for a step, if the runner reached it.
func (report Report) Result(stepID StepID) (stepResult StepResult, ok bool) {
	for _, result := range report.Results {
		if result.StepID == stepID {
			return result, true
		}
	}
	return
}

// Halted reports whether a fatal step failure occurred.
func (report Report) Halted() bool {
	return report.halted
}

// Runner walks the bootstrap steps strictly in declaration order, one at a
// time, on the calling goroutine. There is no reordering and no parallelism;
// each step blocks the flow until its child process exits.
type Runner struct {
	steps []Step
}

func NewRunner(steps ...Step) (instance *Runner) {
	return &Runner{steps: steps}
}

// Run executes the flow. A fatal step failure stops it and the remaining
// steps are reported as skipped; best-effort failures are logged and the
// flow continues.
func (runner *Runner) Run(ctx context.Context) (report Report) {
	for _, step := range runner.steps {
		if report.halted {
			report.Results = append(report.Results, StepResult{
				StepID: step.ID(),
				Status: StatusSkipped,
			})
			continue
		}
		startedAt := time.Now()
		err := step.Run(ctx)
		result := StepResult{
			StepID:   step.ID(),
			Status:   StatusCompleted,
			Duration: time.Since(startedAt),
		}
		if err != nil {
			result.Status = StatusFailed
			result.Err = err
			if step.Policy() == PolicyFatal {
				logrus.Errorf("Step %s failed: %v", step.ID(), err)
				report.halted = true
			} else {
				logrus.Warnf("Step %s failed, continuing: %v", step.ID(), err)
			}
		}
		report.Results = append(report.Results, result)
	}
	return
}
