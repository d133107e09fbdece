package entities

// CommandResult holds the captured output of an external command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r *CommandResult) Success() bool {
	return r.ExitCode == 0
}
