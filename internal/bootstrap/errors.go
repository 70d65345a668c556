package bootstrap

import "fmt"

// ApplicationError reports a non-zero exit from the target application.
type ApplicationError struct {
	ExitCode int
}

func (applicationError *ApplicationError) Error() string {
	return fmt.Sprintf("the application exited with code %d", applicationError.ExitCode)
}
