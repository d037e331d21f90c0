package nlquery

import (
	"errors"
	"fmt"
)

// Error taxonomy for the question-to-SQL pipeline. Every failure path maps
// onto one of these so callers can decide what to surface and whether the
// user should just resubmit.
var (
	// ErrSchemaUnavailable means the store could not be read or holds no
	// tables, so no prompt can be grounded.
	ErrSchemaUnavailable = errors.New("database schema unavailable")

	// ErrEmptyPrompt means Translate was called without a system prompt.
	ErrEmptyPrompt = errors.New("system prompt is empty")

	// ErrModelUnavailable wraps transport or service failures talking to
	// the generative model. No retry is attempted here.
	ErrModelUnavailable = errors.New("generative model unavailable")

	// ErrEmptyResponse means the model answered with nothing usable.
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrNoActiveEntry means a summary was attached before any
	// interaction completed.
	ErrNoActiveEntry = errors.New("no history entry to attach summary to")
)

// ExecError carries the store's diagnostic text verbatim when a generated
// statement is rejected, so the user can judge whether to rephrase.
type ExecError struct {
	SQL     string
	Message string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("sql execution failed: %s", e.Message)
}
