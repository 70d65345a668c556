package bootstrap

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ApplicationPackages are the packages the target application imports: the Qt
// bindings, the icon font bindings, the imaging library and the Gemini API
// client. Installed by name, unpinned.
var ApplicationPackages = []string{"PySide6", "qtawesome", "pillow", "google-genai"}

// ProvisionStep installs the application packages through pip. The step is
// best-effort: a pip failure is logged and the flow continues, since the
// packages may already be present from an earlier run.
type ProvisionStep struct {
	interpreter Interpreter
	packages    []string
}

func NewProvisionStep(interpreter Interpreter, packages []string) (instance *ProvisionStep) {
	return &ProvisionStep{
		interpreter: interpreter,
		packages:    packages,
	}
}

func (step *ProvisionStep) ID() StepID {
	return StepProvisionPackages
}

func (step *ProvisionStep) Policy() Policy {
	return PolicyBestEffort
}

func (step *ProvisionStep) Run(ctx context.Context) (err error) {
	logrus.Infof("Installing packages: %s", strings.Join(step.packages, ", "))
	var output string
	if output, err = step.interpreter.InstallPackages(ctx, step.packages); err != nil {
		if trimmed := strings.TrimSpace(output); trimmed != "" {
			logrus.Warn(trimmed)
		}
		return errors.Wrap(err, "provisioning the application packages")
	}
	logrus.Debug("Package installation finished")
	return
}
