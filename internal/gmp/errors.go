package gmp

import "fmt"

// RemoteError is a command that gvmd answered with a non-2xx status.
type RemoteError struct {
	Op         string
	Status     string
	StatusText string
}

func (e *RemoteError) Error() string {
	if e.StatusText == "" {
		return fmt.Sprintf("gmp %s: status %s", e.Op, e.Status)
	}
	return fmt.Sprintf("gmp %s: status %s: %s", e.Op, e.Status, e.StatusText)
}
