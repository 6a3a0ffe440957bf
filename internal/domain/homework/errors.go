// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// Reasons carried by ShapeError.
const (
	ReasonNotMapping       = "not a mapping"
	ReasonMissingHomeworks = "missing homeworks key"
	ReasonHomeworksNotList = "homeworks not a list"
)

// APIError wraps any failure to obtain a decoded response from the homework API.
type APIError struct {
	Endpoint string
	Err      error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("homework API request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// ShapeError reports a response that does not have the documented structure.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "unexpected API response: " + e.Reason
}

// EmptyError reports a well-formed response with an empty homeworks list.
type EmptyError struct{}

func (e *EmptyError) Error() string { return "no homework entries" }

// FormatError reports a record whose name is missing or whose status has no verdict.
type FormatError struct {
	Name   string
	Status Status
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot describe homework status (homework_name=%q, status=%q)", e.Name, e.Status)
}

// IsRecoverable reports whether err belongs to the set of failures a poll cycle
// reports and survives. Anything else is left to the caller.
func IsRecoverable(err error) bool {
	var (
		apiErr    *APIError
		shapeErr  *ShapeError
		emptyErr  *EmptyError
		formatErr *FormatError
	)
	return errors.As(err, &apiErr) ||
		errors.As(err, &shapeErr) ||
		errors.As(err, &emptyErr) ||
		errors.As(err, &formatErr)
}
