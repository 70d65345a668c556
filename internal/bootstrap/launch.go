package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LaunchStep starts the target application with the interpreter and blocks
// until it exits. The child inherits the launcher console.
type LaunchStep struct {
	interpreter Interpreter
	scriptPath  string
	exitCode    int
}

func NewLaunchStep(interpreter Interpreter, scriptPath string) (instance *LaunchStep) {
	return &LaunchStep{
		interpreter: interpreter,
		scriptPath:  scriptPath,
	}
}

func (step *LaunchStep) ID() StepID {
	return StepLaunchApplication
}

func (step *LaunchStep) Policy() Policy {
	return PolicyFatal
}

func (step *LaunchStep) Run(ctx context.Context) (err error) {
	logrus.Infof("Launching %s", step.scriptPath)
	if step.exitCode, err = step.interpreter.RunScript(ctx, step.scriptPath); err != nil {
		return errors.Wrap(err, "launching the application")
	}
	if step.exitCode != 0 {
		return &ApplicationError{ExitCode: step.exitCode}
	}
	return
}

// ExitCode of the application process, valid once the step has run.
func (step *LaunchStep) ExitCode() int {
	return step.exitCode
}
