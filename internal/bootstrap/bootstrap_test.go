package bootstrap_test

import (
	"context"
	"testing"

	"github.com/mudrikam/gemini-image-gen/internal/bootstrap"
	"github.com/mudrikam/gemini-image-gen/internal/python"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// MockInterpreter records the calls the steps make so the tests can verify
// the flow order and the failure policies.
type MockInterpreter struct {
	Calls []string

	VersionValue string
	VersionErr   error
	InstallErr   error
	ScriptCode   int
	ScriptErr    error
}

func (mockInterpreter *MockInterpreter) Version(_ context.Context) (string, error) {
	mockInterpreter.Calls = append(mockInterpreter.Calls, "version")
	return mockInterpreter.VersionValue, mockInterpreter.VersionErr
}

func (mockInterpreter *MockInterpreter) InstallPackages(_ context.Context, _ []string) (string, error) {
	mockInterpreter.Calls = append(mockInterpreter.Calls, "install")
	return "", mockInterpreter.InstallErr
}

func (mockInterpreter *MockInterpreter) RunScript(_ context.Context, _ string) (int, error) {
	mockInterpreter.Calls = append(mockInterpreter.Calls, "run")
	return mockInterpreter.ScriptCode, mockInterpreter.ScriptErr
}

func newRunner(mockInterpreter *MockInterpreter) (*bootstrap.Runner, *bootstrap.LaunchStep) {
	launchStep := bootstrap.NewLaunchStep(mockInterpreter, "gemini_image_gen.py")
	runner := bootstrap.NewRunner(
		bootstrap.NewInterpreterCheckStep(mockInterpreter),
		bootstrap.NewProvisionStep(mockInterpreter, bootstrap.ApplicationPackages),
		launchStep,
	)
	return runner, launchStep
}

func TestFlowRunsStepsInFixedOrder(t *testing.T) {
	mockInterpreter := &MockInterpreter{VersionValue: "3.11.4"}
	runner, _ := newRunner(mockInterpreter)

	report := runner.Run(context.Background())

	assert.Equal(t, []string{"version", "install", "run"}, mockInterpreter.Calls)
	assert.False(t, report.Halted())
	for _, result := range report.Results {
		assert.Equal(t, bootstrap.StatusCompleted, result.Status)
	}
}

func TestMissingInterpreterBlocksLaterSteps(t *testing.T) {
	mockInterpreter := &MockInterpreter{VersionErr: python.ErrNotFound}
	runner, _ := newRunner(mockInterpreter)

	report := runner.Run(context.Background())

	assert.Equal(t, []string{"version"}, mockInterpreter.Calls)
	assert.True(t, report.Halted())

	result, ok := report.Result(bootstrap.StepInterpreterCheck)
	assert.True(t, ok)
	assert.Equal(t, bootstrap.StatusFailed, result.Status)
	assert.True(t, errors.Is(result.Err, python.ErrNotFound))

	result, ok = report.Result(bootstrap.StepProvisionPackages)
	assert.True(t, ok)
	assert.Equal(t, bootstrap.StatusSkipped, result.Status)

	result, ok = report.Result(bootstrap.StepLaunchApplication)
	assert.True(t, ok)
	assert.Equal(t, bootstrap.StatusSkipped, result.Status)
}

func TestProvisionFailureDoesNotStopTheFlow(t *testing.T) {
	mockInterpreter := &MockInterpreter{
		VersionValue: "3.11.4",
		InstallErr:   errors.New("pip exited 1"),
	}
	runner, _ := newRunner(mockInterpreter)

	report := runner.Run(context.Background())

	assert.Equal(t, []string{"version", "install", "run"}, mockInterpreter.Calls)
	assert.False(t, report.Halted())

	result, _ := report.Result(bootstrap.StepProvisionPackages)
	assert.Equal(t, bootstrap.StatusFailed, result.Status)
	result, _ = report.Result(bootstrap.StepLaunchApplication)
	assert.Equal(t, bootstrap.StatusCompleted, result.Status)
}

func TestProvisionAttemptedExactlyOnce(t *testing.T) {
	mockInterpreter := &MockInterpreter{
		VersionValue: "3.11.4",
		InstallErr:   errors.New("pip exited 1"),
	}
	runner, _ := newRunner(mockInterpreter)

	runner.Run(context.Background())

	installs := 0
	for _, call := range mockInterpreter.Calls {
		if call == "install" {
			installs++
		}
	}
	assert.Equal(t, 1, installs)
}

func TestApplicationFailureCarriesExitCode(t *testing.T) {
	mockInterpreter := &MockInterpreter{VersionValue: "3.11.4", ScriptCode: 3}
	runner, launchStep := newRunner(mockInterpreter)

	report := runner.Run(context.Background())

	result, _ := report.Result(bootstrap.StepLaunchApplication)
	assert.Equal(t, bootstrap.StatusFailed, result.Status)

	var applicationError *bootstrap.ApplicationError
	assert.True(t, errors.As(result.Err, &applicationError))
	assert.Equal(t, 3, applicationError.ExitCode)
	assert.Equal(t, 3, launchStep.ExitCode())
}

func TestApplicationStartFailureIsNotAnApplicationError(t *testing.T) {
	mockInterpreter := &MockInterpreter{
		VersionValue: "3.11.4",
		ScriptErr:    errors.New("fork/exec: permission denied"),
	}
	runner, _ := newRunner(mockInterpreter)

	report := runner.Run(context.Background())

	result, _ := report.Result(bootstrap.StepLaunchApplication)
	assert.Equal(t, bootstrap.StatusFailed, result.Status)

	var applicationError *bootstrap.ApplicationError
	assert.False(t, errors.As(result.Err, &applicationError))
}

func TestInterpreterCheckRecordsVersion(t *testing.T) {
	mockInterpreter := &MockInterpreter{VersionValue: "3.9.7"}
	step := bootstrap.NewInterpreterCheckStep(mockInterpreter)

	if err := step.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "3.9.7", step.Version())
}
