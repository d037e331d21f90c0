package prompts

import (
	"fmt"
	"strings"
)

// PromptBuilder constructs the prompts sent to the LLM. The instruction
// preamble and few-shot examples are static; only the schema block and the
// per-call history/question vary.
type PromptBuilder struct {
	rules    string
	examples string
}

// NewPromptBuilder creates a PromptBuilder with the fixed rule set.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		rules:    generationRules,
		examples: queryExamples,
	}
}

// BuildSystemPrompt composes the reusable system prompt: role framing, the
// rendered schema, generation rules and few-shot examples. Deterministic
// for a given schema rendering.
func (pb *PromptBuilder) BuildSystemPrompt(schema string) string {
	return fmt.Sprintf(`You are an expert SQLite query generator that converts natural language to perfect SQL queries for the following exact schema:

%s

%s

%s`, strings.TrimRight(schema, "\n"), pb.rules, pb.examples)
}

// BuildQueryPrompt merges the system prompt, the flattened conversation
// history and the current question into one single-turn request body.
func (pb *PromptBuilder) BuildQueryPrompt(systemPrompt, historyBlock, question string) string {
	return fmt.Sprintf(`%s

Conversation History:
%s

Current Question:
%s`, systemPrompt, historyBlock, question)
}

// BuildSummaryPrompt frames a result preview and the originating question
// for the narration request.
func (pb *PromptBuilder) BuildSummaryPrompt(question, dataPreview string) string {
	return fmt.Sprintf(`You are an expert data summarizer. Summarize the following data in a concise and meaningful way.

User Question:
%s

Data Preview:
%s

Provide a summary that highlights key insights, trends, or patterns in the data.`, question, dataPreview)
}
