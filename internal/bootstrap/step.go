package bootstrap

import "context"

// StepID identifies a bootstrap step.
type StepID string

const (
	StepInterpreterCheck  StepID = "interpreter-check"
	StepProvisionPackages StepID = "provision-packages"
	StepLaunchApplication StepID = "launch-application"
)

// Policy tells the runner what a step failure means for the rest of the flow.
type Policy int

const (
	// PolicyFatal stops the flow on failure.
	PolicyFatal Policy = iota
	// PolicyBestEffort logs the failure and keeps the flow going.
	PolicyBestEffort
)

// Status of a step after the runner has walked the flow.
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusSkipped   Status = "SKIPPED"
)

// Step is a single unit of the launch flow, executed in declaration order.
type Step interface {
	ID() StepID
	Policy() Policy
	Run(ctx context.Context) error
}

// Interpreter is the slice of the Python service the bootstrap steps need.
type Interpreter interface {
	Version(ctx context.Context) (string, error)
	InstallPackages(ctx context.Context, packages []string) (string, error)
	RunScript(ctx context.Context, scriptPath string) (int, error)
}
