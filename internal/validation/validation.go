// Package validation defines the error type returned for payload and
// invariant violations. The HTTP boundary maps it to a client error.
package validation

import "fmt"

type Error struct {
	Field   string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
