package tasks

import "fmt"

// LoadError represents an error loading the task list file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tasks load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("tasks load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
