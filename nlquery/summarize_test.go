package nlquery

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeCapsPreviewRows(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"a short synopsis"}}
	engine := newEngine(nil, gen)

	summary, err := engine.Summarize(context.Background(), testResult(25), "what are the values")
	require.NoError(t, err)
	require.Equal(t, "a short synopsis", summary)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	require.Contains(t, prompt, "what are the values")
	require.Contains(t, prompt, "v10")
	require.NotContains(t, prompt, "v11")
}

func TestSummarizeEmptyResponse(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"  \n"}}
	engine := newEngine(nil, gen)

	_, err := engine.Summarize(context.Background(), testResult(1), "question")
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestSummarizeModelUnavailable(t *testing.T) {
	gen := &fakeGenerator{err: ErrModelUnavailable}
	engine := newEngine(nil, gen)

	_, err := engine.Summarize(context.Background(), testResult(1), "question")
	require.ErrorIs(t, err, ErrModelUnavailable)
}

func TestResultRender(t *testing.T) {
	r := &Result{
		Columns: []string{"Product_Name", "TotalRevenue"},
		Rows:    [][]string{{"Smartphone", "900"}, {"Laptop", "1200"}},
	}

	rendered := r.Render()
	require.Contains(t, rendered, "Product_Name")
	require.Contains(t, rendered, "Smartphone")

	lines := strings.Split(rendered, "\n")
	require.Len(t, lines, 3)
}

func TestResultRenderEmpty(t *testing.T) {
	r := &Result{Columns: []string{"n"}}
	require.Contains(t, r.Render(), "No results found")
	require.True(t, r.Empty())
}

func TestResultPreviewCopies(t *testing.T) {
	r := testResult(3)
	p := r.Preview(2)
	require.Len(t, p.Rows, 2)

	p.Rows[0][0] = "mutated"
	require.Equal(t, "1", r.Rows[0][0])
}
