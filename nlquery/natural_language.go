package nlquery

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/speak2db/speak2db/nlquery/prompts"
)

const (
	defaultModelName    = "gemini-2.0-flash"
	defaultModelTimeout = 30 * time.Second
	defaultQueryTimeout = 15 * time.Second
)

// Engine owns one session's question-to-SQL pipeline: prompt construction,
// translation, execution, history and summarization. One Engine per user
// session; its History is never shared.
type Engine struct {
	client       *genai.Client
	gen          Generator
	db           *sql.DB
	prompts      *prompts.PromptBuilder
	history      *History
	systemPrompt string
	modelTimeout time.Duration
	queryTimeout time.Duration
}

// NewEngine builds a session engine over an open store connection. The
// Gemini client is configured from GEMINI_API_KEY and the optional
// GEMINI_MODEL override; the system prompt is grounded on a fresh schema
// introspection.
func NewEngine(ctx context.Context, db *sql.DB) (*Engine, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini client: %v", err)
	}

	modelName := os.Getenv("GEMINI_MODEL")
	if modelName == "" {
		modelName = defaultModelName
	}
	model := client.GenerativeModel(modelName)

	// Lower temperature for more precise SQL.
	temp := float32(0.2)
	model.Temperature = &temp

	model.SafetySettings = []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockNone,
		},
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockNone,
		},
	}

	engine := newEngine(db, NewGeminiGenerator(model))
	engine.client = client

	if err := engine.RefreshSystemPrompt(ctx); err != nil {
		client.Close()
		return nil, err
	}
	return engine, nil
}

// newEngine wires the pieces without touching the network. Tests inject a
// fake Generator here.
func newEngine(db *sql.DB, gen Generator) *Engine {
	return &Engine{
		gen:          gen,
		db:           db,
		prompts:      prompts.NewPromptBuilder(),
		history:      NewHistory(),
		modelTimeout: defaultModelTimeout,
		queryTimeout: defaultQueryTimeout,
	}
}

// RefreshSystemPrompt re-introspects the store and rebuilds the system
// prompt. Call after any schema change; the prompt is otherwise reused for
// the whole session.
func (e *Engine) RefreshSystemPrompt(ctx context.Context) error {
	schema, err := DescribeSchema(ctx, e.db)
	if err != nil {
		return err
	}
	e.systemPrompt = e.prompts.BuildSystemPrompt(schema.Render())
	return nil
}

// History exposes the session's interaction log for display.
func (e *Engine) History() *History {
	return e.history
}

// Execute runs a normalized SQL string against the store and shapes the
// rows into an ordered tabular result. No rewriting, no retries; a
// rejected statement surfaces the store's diagnostic verbatim.
func (e *Engine) Execute(ctx context.Context, sqlQuery string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.queryTimeout)
	defer cancel()

	rows, err := e.db.QueryContext(ctx, sqlQuery)
	if err != nil {
		return nil, &ExecError{SQL: sqlQuery, Message: err.Error()}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &ExecError{SQL: sqlQuery, Message: err.Error()}
	}

	result := &Result{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, &ExecError{SQL: sqlQuery, Message: err.Error()}
		}

		row := make([]string, len(columns))
		for i, val := range values {
			row[i] = renderCell(val)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &ExecError{SQL: sqlQuery, Message: err.Error()}
	}
	return result, nil
}

func renderCell(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Ask runs the full pipeline for one question: translate, execute, record,
// summarize. A failed execution leaves the history untouched; a failed
// summary leaves the entry without one. Returns the generated SQL, the
// result and the summary.
func (e *Engine) Ask(ctx context.Context, question string) (string, *Result, string, error) {
	sqlQuery, err := e.Translate(ctx, question)
	if err != nil {
		return "", nil, "", err
	}

	result, err := e.Execute(ctx, sqlQuery)
	if err != nil {
		return sqlQuery, nil, "", err
	}

	e.history.Append(question, sqlQuery, result)

	summary, err := e.Summarize(ctx, result, question)
	if err != nil {
		// Narration is best-effort; the query itself succeeded.
		return sqlQuery, result, "", nil
	}
	if err := e.history.AttachSummary(summary); err != nil {
		return sqlQuery, result, summary, nil
	}
	return sqlQuery, result, summary, nil
}

// Close releases the store connection and the model client.
func (e *Engine) Close() {
	if e.db != nil {
		e.db.Close()
	}
	if e.client != nil {
		e.client.Close()
	}
}
