package nlquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// Generator is the boundary to the text-generation model: one opaque text
// blob in, one out. Each call is an independent single-turn request; the
// model holds no session state, so all context is re-sent every call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator adapts a genai model to the Generator boundary.
type GeminiGenerator struct {
	model *genai.GenerativeModel
}

// NewGeminiGenerator wraps an already-configured generative model.
func NewGeminiGenerator(model *genai.GenerativeModel) *GeminiGenerator {
	return &GeminiGenerator{model: model}
}

// Generate sends a single-turn request and concatenates the text parts of
// the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	chat := g.model.StartChat()
	resp, err := chat.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Translate turns a natural-language question into an executable SQL
// string. The system prompt, the last interactions and the question are
// flattened into one request body; the raw response is cleaned of fence
// markers. No semantic SQL validation happens here and no retry is
// attempted; the caller decides whether to resubmit.
func (e *Engine) Translate(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(e.systemPrompt) == "" {
		return "", ErrEmptyPrompt
	}

	historyBlock := RenderForPrompt(e.history.RecentForPrompt())
	fullPrompt := e.prompts.BuildQueryPrompt(e.systemPrompt, historyBlock, question)

	ctx, cancel := context.WithTimeout(ctx, e.modelTimeout)
	defer cancel()

	raw, err := e.gen.Generate(ctx, fullPrompt)
	if err != nil {
		return "", err
	}

	sqlQuery := CleanSQL(raw)
	if sqlQuery == "" {
		return "", ErrEmptyResponse
	}
	return sqlQuery, nil
}

// CleanSQL normalizes raw model output into bare SQL: trims whitespace and
// strips a leading ```<lang> fence with its matching trailing ``` marker.
// Fence tags like "sqlite" or "sql" are dropped with the fence rather than
// erased from the statement body, so identifiers containing those
// substrings survive. Idempotent on already-clean input.
func CleanSQL(raw string) string {
	sqlQuery := strings.TrimSpace(raw)
	if !strings.HasPrefix(sqlQuery, "```") {
		return sqlQuery
	}
	sqlQuery = strings.TrimPrefix(sqlQuery, "```")

	// Language tags seen in the wild on fenced model output.
	for _, tag := range []string{"sqlite", "sql", "SQLite", "SQL"} {
		if rest, ok := strings.CutPrefix(sqlQuery, tag); ok {
			sqlQuery = rest
			break
		}
	}
	if idx := strings.LastIndex(sqlQuery, "```"); idx != -1 {
		sqlQuery = sqlQuery[:idx]
	}
	return strings.TrimSpace(sqlQuery)
}
