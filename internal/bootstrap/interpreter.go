package bootstrap

import (
	"context"

	"github.com/sirupsen/logrus"
)

// InterpreterCheckStep verifies the Python interpreter is reachable and
// records the version it reports. Nothing after it may run when it fails.
type InterpreterCheckStep struct {
	interpreter Interpreter
	version     string
}

func NewInterpreterCheckStep(interpreter Interpreter) (instance *InterpreterCheckStep) {
	return &InterpreterCheckStep{interpreter: interpreter}
}

func (step *InterpreterCheckStep) ID() StepID {
	return StepInterpreterCheck
}

func (step *InterpreterCheckStep) Policy() Policy {
	return PolicyFatal
}

func (step *InterpreterCheckStep) Run(ctx context.Context) (err error) {
	if step.version, err = step.interpreter.Version(ctx); err != nil {
		return
	}
	logrus.Infof("Found Python %s", step.version)
	return
}

// Version reported by the interpreter, empty until the step has completed.
func (step *InterpreterCheckStep) Version() string {
	return step.version
}
