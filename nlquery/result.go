package nlquery

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Result is a tabular query result. Column order matches the statement's
// select list; every row has exactly len(Columns) cells. Cells are kept as
// rendered strings since everything downstream (display, prompts, the
// summarizer) consumes text.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the result has no rows.
func (r *Result) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// Preview returns a copy of the result truncated to at most n rows. The
// column header is always preserved.
func (r *Result) Preview(n int) *Result {
	if r == nil {
		return nil
	}
	rows := r.Rows
	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	out := &Result{
		Columns: append([]string(nil), r.Columns...),
		Rows:    make([][]string, len(rows)),
	}
	for i, row := range rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// RenderTo writes the result as a plain table.
func (r *Result) RenderTo(w io.Writer) {
	if r.Empty() {
		fmt.Fprintln(w, "No results found")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(r.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, row := range r.Rows {
		table.Append(row)
	}
	table.Render()
}

// Render returns the plain-table rendering as a string, for embedding in
// prompts and history blocks.
func (r *Result) Render() string {
	var sb strings.Builder
	r.RenderTo(&sb)
	return strings.TrimRight(sb.String(), "\n")
}
