package configloader_test

import (
	"os"
	"testing"

	"github.com/mudrikam/gemini-image-gen/internal/configloader"
)

// Test default configuration loading
func TestLoadDefaultConfiguration(t *testing.T) {
	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "info" {
		t.Errorf("Default log level is \"%s\", not \"%s\"", configuration.LogLevel, "info")
	}
	if configuration.PythonBin != "python" {
		t.Errorf("Default interpreter is \"%s\", not \"%s\"", configuration.PythonBin, "python")
	}
	if configuration.TargetScript != "gemini_image_gen.py" {
		t.Errorf("Default target script is \"%s\", not \"%s\"", configuration.TargetScript, "gemini_image_gen.py")
	}
	if configuration.NonInteractive {
		t.Error("The launcher must be interactive by default")
	}
	if !configuration.HistoryEnabled {
		t.Error("The launch history must be enabled by default")
	}
}

// Test environment variables configuration loading
func TestLoadEnvironmentVariablesConfiguration(t *testing.T) {
	os.Setenv("PYTHON_BIN", "python3")

	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.PythonBin != "python3" {
		t.Errorf("Interpreter is \"%s\", not \"%s\"", configuration.PythonBin, "python3")
	}
}
