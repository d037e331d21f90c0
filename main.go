package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/speak2db/speak2db/importer"
	"github.com/speak2db/speak2db/migrations"
	"github.com/speak2db/speak2db/nlquery"
	"github.com/speak2db/speak2db/voice"
)

const defaultDBPath = "sales_database.db"

// session holds the per-run mutable state: one engine (owning its own
// history) and the currently selected visualization mode.
type session struct {
	engine  *nlquery.Engine
	speaker voice.Speaker
	vizMode string
}

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded: %v", err)
	}
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	if err := migrations.InitSchema(db); err != nil {
		log.Fatalf("Error initializing schema: %v", err)
	}

	ctx := context.Background()

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		seedDatabase(ctx, db)
	}

	engine, err := nlquery.NewEngine(ctx, db)
	if err != nil {
		log.Fatalf("Error starting query engine: %v", err)
	}
	defer engine.Close()

	s := &session{
		engine:  engine,
		speaker: voice.NopSpeaker{},
		vizMode: "Bar Chart",
	}

	color.Cyan("\n=== Speak2DB ===")
	fmt.Println("Turn your questions into database queries - no SQL skills needed.")
	fmt.Println("Type a question, or: history | schema | exit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit":
			color.Green("Thank you for using Speak2DB!")
			return
		case "history":
			s.showHistory()
		case "schema":
			s.showSchema(ctx, db)
		default:
			if mode, ok := voice.DetectVisualization(input); ok {
				s.vizMode = mode
				color.Green("Visualization type set to: %s", mode)
				continue
			}
			s.ask(ctx, input)
		}
	}
}

func (s *session) ask(ctx context.Context, question string) {
	color.Yellow("\nGenerating SQL query...")

	sqlQuery, result, summary, err := s.engine.Ask(ctx, question)
	if err != nil {
		if sqlQuery != "" {
			fmt.Printf("\nGenerated SQL Query:\n%s\n", sqlQuery)
		}
		color.Red("Error: %v", err)
		return
	}

	fmt.Printf("\nGenerated SQL Query:\n%s\n\n", sqlQuery)
	color.Green("Query executed successfully!")
	result.RenderTo(os.Stdout)

	// Single-cell results get called out like a metric.
	if len(result.Columns) == 1 && len(result.Rows) == 1 {
		color.Cyan("\n%s: %s", result.Columns[0], result.Rows[0][0])
	}

	if summary != "" {
		color.Yellow("\nSummary:")
		fmt.Println(summary)
		if err := s.speaker.Say(ctx, summary); err != nil {
			log.Printf("Warning: text-to-speech failed: %v", err)
		}
	}
}

func (s *session) showHistory() {
	entries := s.engine.History().RecentForDisplay()
	if len(entries) == 0 {
		fmt.Println("No history available.")
		return
	}

	// Newest first for display.
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		color.Cyan("\nQuestion: %s", entry.Question)
		fmt.Printf("SQL Query:\n%s\n", entry.SQLQuery)
		fmt.Println("Result:")
		entry.ResultPreview.RenderTo(os.Stdout)
		if entry.Summary != "" {
			fmt.Printf("Summary: %s\n", entry.Summary)
		}
	}
}

func (s *session) showSchema(ctx context.Context, db *sql.DB) {
	schema, err := nlquery.DescribeSchema(ctx, db)
	if err != nil {
		color.Red("Error: %v", err)
		return
	}
	fmt.Println(schema.Render())
}

// seedDatabase loads the three fixed CSV exports sitting next to the
// binary into the store.
func seedDatabase(ctx context.Context, db *sql.DB) {
	files := map[string]string{
		"CustomerTable":  "CustomerTable.csv",
		"SalesTable":     "SalesTable.csv",
		"TransactionLog": "TransactionLog.csv",
	}

	for table, path := range files {
		stats, err := importer.LoadCSV(ctx, db, table, path)
		if err != nil {
			log.Printf("Warning: seeding %s failed: %v", table, err)
			continue
		}
		color.Green("Loaded %d rows into %s (%d skipped)", stats.Imported, stats.Table, stats.Skipped)
	}
}
