package textproc

import (
	"errors"
	"fmt"
)

// ErrEmptyInput means the input text was empty or whitespace-only. No model
// call is made in that case.
var ErrEmptyInput = errors.New("input text is empty")

// ProcessingError describes a failed generative-model round trip with enough
// detail to diagnose: an HTTP status when one was received, a category for
// the failure class, and the upstream message.
type ProcessingError struct {
	Status   int    // 0 when no HTTP response was received
	Category string // "connection", "http", "response" or "client"
	Message  string
}

func (e *ProcessingError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("text processing failed (%s, status %d): %s", e.Category, e.Status, e.Message)
	}
	return fmt.Sprintf("text processing failed (%s): %s", e.Category, e.Message)
}
