package python

import (
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Default interpreter binary name, resolved through the system PATH.
const DEFAULT_BINARY = "python"

// ErrNotFound is returned when the interpreter binary cannot be resolved on PATH.
var ErrNotFound = errors.New("python interpreter not found on PATH")

var versionPattern = regexp.MustCompile(`Python (\d+\.\d+(?:\.\d+)?)`)

// Interpreter runs commands against a Python installation resolved from PATH.
type Interpreter struct {
	binary string
}

func NewInterpreter(binary string) (instance *Interpreter) {
	if binary == "" {
		binary = DEFAULT_BINARY
	}
	return &Interpreter{binary: binary}
}

func (interpreter *Interpreter) Binary() string {
	return interpreter.binary
}

// Version resolves the interpreter on PATH and queries its version banner.
// Python 2 prints the banner on stderr, so both streams are inspected.
func (interpreter *Interpreter) Version(ctx context.Context) (version string, err error) {
	if _, err = exec.LookPath(interpreter.binary); err != nil {
		return "", ErrNotFound
	}
	var output []byte
	if output, err = exec.CommandContext(ctx, interpreter.binary, "--version").CombinedOutput(); err != nil {
		return "", errors.Wrap(err, "querying the interpreter version")
	}
	return parseVersion(output)
}

// InstallPackages runs pip for the given package names. The combined pip
// output is returned together with the error so failures can be logged.
func (interpreter *Interpreter) InstallPackages(ctx context.Context, packages []string) (output string, err error) {
	arguments := append([]string{"-m", "pip", "install"}, packages...)
	var outputBytes []byte
	if outputBytes, err = exec.CommandContext(ctx, interpreter.binary, arguments...).CombinedOutput(); err != nil {
		return string(outputBytes), errors.Wrap(err, "installing packages")
	}
	return string(outputBytes), nil
}

// RunScript launches the target script with the console inherited and blocks
// until it exits. A non-zero exit is reported through the exit code, not the
// error, which is reserved for processes that could not be started at all.
func (interpreter *Interpreter) RunScript(ctx context.Context, scriptPath string) (exitCode int, err error) {
	process := exec.CommandContext(ctx, interpreter.binary, scriptPath)
	process.Stdin = os.Stdin
	process.Stdout = os.Stdout
	process.Stderr = os.Stderr
	if err = process.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return exitError.ExitCode(), nil
		}
		return 0, errors.Wrap(err, "starting the application process")
	}
	return 0, nil
}

func parseVersion(banner []byte) (version string, err error) {
	matches := versionPattern.FindStringSubmatch(string(banner))
	if matches == nil {
		return "", errors.Errorf("unexpected version banner %q", strings.TrimSpace(string(banner)))
	}
	return matches[1], nil
}
