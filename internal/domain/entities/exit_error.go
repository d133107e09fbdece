package entities

import "fmt"

const ExitCodeDirtyWorktree = 1

// ExitError reports a fatal outcome that must end the process with Code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s (exit code %d)", e.Message, e.Code)
}
