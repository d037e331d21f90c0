package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `Database Schema (EXACT STRUCTURE):
CustomerTable:
  - Customer_ID (TEXT)
  - First_Name (TEXT)
`

func TestBuildSystemPromptContainsLiteralRules(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildSystemPrompt(testSchema)

	rules := []string{
		"Use ONLY these exact table and column names",
		"use SQLite DATE functions",
		"(Quantity * Unit_Price * (1 - Discount))",
		"Always use explicit JOINs with ON clauses",
	}
	for _, rule := range rules {
		require.Contains(t, prompt, rule)
	}
}

func TestBuildSystemPromptOutputConstraints(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildSystemPrompt(testSchema)

	constraints := []string{
		"ONLY executable SQL code.",
		"NO markdown formatting.",
		"NO database labels.",
		"NO comments or explanations.",
		"NO trailing semicolons.",
	}
	for _, c := range constraints {
		require.Contains(t, prompt, c)
	}
}

func TestBuildSystemPromptEmbedsSchema(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildSystemPrompt(testSchema)

	require.Contains(t, prompt, "CustomerTable:")
	require.Contains(t, prompt, "  - Customer_ID (TEXT)")

	// Rules stay fixed no matter what schema goes in.
	other := pb.BuildSystemPrompt("Database Schema (EXACT STRUCTURE):\nOther:\n  - id (INTEGER)\n")
	require.Contains(t, other, "(Quantity * Unit_Price * (1 - Discount))")
}

func TestBuildSystemPromptIncludesExamples(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildSystemPrompt(testSchema)

	require.Contains(t, prompt, "Show all customers who placed an order in the last 30 days")
	require.Contains(t, prompt, "DATE('now', '-30 days')")
	require.Contains(t, prompt, "Find total revenue per product after discounts")
}

func TestBuildSystemPromptDeterministic(t *testing.T) {
	pb := NewPromptBuilder()
	require.Equal(t, pb.BuildSystemPrompt(testSchema), pb.BuildSystemPrompt(testSchema))
}

func TestBuildQueryPromptFraming(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildQueryPrompt("SYSTEM", "HISTORY BLOCK", "the question")

	require.True(t, strings.HasPrefix(prompt, "SYSTEM"))
	require.Contains(t, prompt, "Conversation History:\nHISTORY BLOCK")
	require.True(t, strings.HasSuffix(prompt, "Current Question:\nthe question"))
}

func TestBuildSummaryPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildSummaryPrompt("which product sells best", "Product_Name\tTotal\nLaptop\t12")

	require.Contains(t, prompt, "expert data summarizer")
	require.Contains(t, prompt, "which product sells best")
	require.Contains(t, prompt, "Laptop\t12")
}
