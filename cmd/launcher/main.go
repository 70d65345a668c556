package main

import (
	"context"
	"flag"
	"os"
	"runtime/debug"
	"time"

	"github.com/mudrikam/gemini-image-gen/internal/bootstrap"
	"github.com/mudrikam/gemini-image-gen/internal/configloader"
	"github.com/mudrikam/gemini-image-gen/internal/console"
	"github.com/mudrikam/gemini-image-gen/internal/history"
	"github.com/mudrikam/gemini-image-gen/internal/python"
	"github.com/mudrikam/gemini-image-gen/internal/settings"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "gemini-image-gen"

// Oldest interpreter the target application supports. Named in the diagnostic
// shown when no interpreter is found.
const MINIMUM_PYTHON_VERSION = "3.9"

func main() {
	os.Exit(run())
}

func run() int {
	// Parsing the command line argument to change settings file location
	configurationFilePath := flag.String("config", "", "Configuration file path")
	flag.Parse()
	// Loading application configuration
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}

	// Set log level
	logrus.SetLevel(level)
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		logrus.Debug("Launching gemini-image-gen launcher v.", bi.Main.Version)
	}

	operatorConsole := console.NewConsole(!configuration.NonInteractive)
	interpreter := python.NewInterpreter(configuration.PythonBin)

	var store *history.Store
	if configuration.HistoryEnabled {
		if store, err = history.OpenStore(configuration.DataPath); err != nil {
			logrus.Warnf("Cannot open the launch history store: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	interpreterStep := bootstrap.NewInterpreterCheckStep(interpreter)
	provisionStep := bootstrap.NewProvisionStep(interpreter, bootstrap.ApplicationPackages)
	launchStep := bootstrap.NewLaunchStep(interpreter, configuration.TargetScript)
	runner := bootstrap.NewRunner(interpreterStep, provisionStep, launchStep)

	startedAt := time.Now()
	var session *history.Session
	if store != nil {
		if session, err = store.BeginSession(startedAt); err != nil {
			logrus.Warnf("Cannot record the launch session: %v", err)
			session = nil
		}
	}

	report := runner.Run(context.Background())

	exitCode := 0
	interpreterResult, _ := report.Result(bootstrap.StepInterpreterCheck)
	launchResult, _ := report.Result(bootstrap.StepLaunchApplication)
	if interpreterResult.Status == bootstrap.StatusFailed {
		exitCode = 1
	} else if launchResult.Status == bootstrap.StatusFailed {
		var applicationError *bootstrap.ApplicationError
		if errors.As(launchResult.Err, &applicationError) {
			exitCode = applicationError.ExitCode
		} else {
			exitCode = 1
		}
	}

	// Persist the run state before blocking on the operator
	recordSession(store, session, report, interpreterStep, exitCode)
	syncSettings(configuration.DataPath, report, interpreterStep, startedAt)

	if interpreterResult.Status == bootstrap.StatusFailed {
		operatorConsole.Notice("Python was not found. Please install Python %s or newer and make sure it is available on your PATH.", MINIMUM_PYTHON_VERSION)
		operatorConsole.Acknowledge()
	} else if launchResult.Status == bootstrap.StatusFailed {
		var applicationError *bootstrap.ApplicationError
		if errors.As(launchResult.Err, &applicationError) {
			operatorConsole.Notice("The application encountered an error (exit code %d).", applicationError.ExitCode)
		} else {
			operatorConsole.Notice("The application could not be started: %v", launchResult.Err)
		}
		operatorConsole.Acknowledge()
	}

	return exitCode
}

// recordSession stores the step results and closes the session. Best-effort:
// a broken store never affects the launch outcome.
func recordSession(store *history.Store, session *history.Session, report bootstrap.Report, interpreterStep *bootstrap.InterpreterCheckStep, exitCode int) {
	if store == nil || session == nil {
		return
	}
	for _, result := range report.Results {
		detail := ""
		if result.Err != nil {
			detail = result.Err.Error()
		} else if result.StepID == bootstrap.StepInterpreterCheck {
			detail = interpreterStep.Version()
		}
		if err := store.RecordStep(session, string(result.StepID), string(result.Status), detail, result.Duration); err != nil {
			logrus.Warnf("Cannot record the %s step result: %v", result.StepID, err)
		}
	}
	outcome := history.OUTCOME_SUCCEEDED
	if exitCode != 0 {
		outcome = history.OUTCOME_FAILED
	}
	if err := store.CloseSession(session, outcome, exitCode); err != nil {
		logrus.Warnf("Cannot close the launch session: %v", err)
	}
}

// syncSettings updates the launcher state file. Best-effort as well.
func syncSettings(dataPath string, report bootstrap.Report, interpreterStep *bootstrap.InterpreterCheckStep, startedAt time.Time) {
	launcherSettings := settings.NewSettings(dataPath)
	launcherSettings.SetTimestamp("last_run", startedAt)
	if version := interpreterStep.Version(); version != "" {
		launcherSettings.Set("interpreter_version", version)
	}
	if result, ok := report.Result(bootstrap.StepProvisionPackages); ok && result.Status == bootstrap.StatusCompleted {
		launcherSettings.SetTimestamp("last_provisioned", time.Now())
	}
	if err := launcherSettings.Sync(); err != nil {
		logrus.Warnf("Cannot update the launcher settings file: %v", err)
	}
}
