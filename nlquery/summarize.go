package nlquery

import (
	"context"
	"strings"
)

// summaryRowCap bounds how many result rows are shown to the model when
// asking for a narration.
const summaryRowCap = 10

// Summarize asks the model for a short natural-language synopsis of a
// result in the context of the question that produced it. The response is
// returned as-is; summaries are displayed and spoken, never executed.
func (e *Engine) Summarize(ctx context.Context, result *Result, question string) (string, error) {
	preview := result.Preview(summaryRowCap).Render()
	prompt := e.prompts.BuildSummaryPrompt(question, preview)

	ctx, cancel := context.WithTimeout(ctx, e.modelTimeout)
	defer cancel()

	summary, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", ErrEmptyResponse
	}
	return summary, nil
}
