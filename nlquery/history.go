package nlquery

import (
	"fmt"
	"strings"
)

const (
	// promptHistoryDepth is how many past interactions are re-sent to the
	// model with each new question.
	promptHistoryDepth = 3

	// displayHistoryDepth is how many past interactions the presentation
	// layer shows.
	displayHistoryDepth = 5

	// previewRowCap bounds the rows of a result kept in history and
	// rendered into prompts.
	previewRowCap = 5
)

// Entry is one completed interaction. Summary is the only field written
// after creation, and it is set at most once.
type Entry struct {
	Question      string
	SQLQuery      string
	ResultPreview *Result
	Summary       string
}

// History is a session-scoped, append-only log of interactions. Storage is
// unbounded; consumers only ever see a bounded suffix. Not safe for
// concurrent use; each session owns its own History.
type History struct {
	entries []Entry
}

// NewHistory returns an empty history for a fresh session.
func NewHistory() *History {
	return &History{}
}

// Append records a completed interaction. The result is truncated to the
// preview cap before storage.
func (h *History) Append(question, sqlQuery string, result *Result) {
	h.entries = append(h.entries, Entry{
		Question:      question,
		SQLQuery:      sqlQuery,
		ResultPreview: result.Preview(previewRowCap),
	})
}

// AttachSummary sets the summary on the most recently appended entry.
// Returns ErrNoActiveEntry when nothing has been appended yet.
func (h *History) AttachSummary(summary string) error {
	if len(h.entries) == 0 {
		return ErrNoActiveEntry
	}
	h.entries[len(h.entries)-1].Summary = summary
	return nil
}

// Len returns the number of recorded interactions.
func (h *History) Len() int {
	return len(h.entries)
}

// RecentForPrompt returns the last entries used for context injection,
// oldest first.
func (h *History) RecentForPrompt() []Entry {
	return h.tail(promptHistoryDepth)
}

// RecentForDisplay returns the last entries for presentation, oldest
// first; ordering for display is the presenter's concern.
func (h *History) RecentForDisplay() []Entry {
	return h.tail(displayHistoryDepth)
}

func (h *History) tail(n int) []Entry {
	start := len(h.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]Entry, len(h.entries)-start)
	copy(out, h.entries[start:])
	return out
}

// RenderForPrompt flattens entries into the fixed conversation-history
// block re-sent to the model on every call.
func RenderForPrompt(entries []Entry) string {
	var sb strings.Builder
	for i, entry := range entries {
		fmt.Fprintf(&sb, "Previous Question %d:\n%s\n\n", i+1, entry.Question)
		fmt.Fprintf(&sb, "SQL Query %d:\n%s\n\n", i+1, entry.SQLQuery)
		fmt.Fprintf(&sb, "Result %d:\n%s\n\n", i+1, entry.ResultPreview.Render())
	}
	return sb.String()
}
