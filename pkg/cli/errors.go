package cli

import "fmt"

// ArtifactError reports a defect in a deployment artifact: unreadable,
// malformed, or failing validation. Path identifies the artifact the
// operator has to fix.
type ArtifactError struct {
	Path   string
	Reason string
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("deployment artifact %s: %s", e.Path, e.Reason)
}

// NewArtifactError creates a new ArtifactError.
func NewArtifactError(path, reason string) *ArtifactError {
	return &ArtifactError{
		Path:   path,
		Reason: reason,
	}
}

// CommandError wraps a failure from one of the crms subcommands.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("crms %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}
