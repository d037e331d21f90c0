package migrations

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the fixed sales store tables if they do not exist
// yet. The table and column names are a compatibility contract with the
// prompt rules and must not be renamed.
func InitSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS CustomerTable (
			Customer_ID TEXT PRIMARY KEY,
			First_Name TEXT,
			Last_Name TEXT,
			Email TEXT,
			Phone TEXT,
			Address TEXT,
			City TEXT,
			State TEXT,
			Registration_Date DATE
		)`,
		`CREATE TABLE IF NOT EXISTS SalesTable (
			Sale_ID TEXT PRIMARY KEY,
			Customer_ID TEXT,
			Product_ID TEXT,
			Product_Name TEXT,
			Category TEXT,
			Quantity INTEGER,
			Unit_Price REAL,
			Discount REAL,
			Sale_Date DATE,
			FOREIGN KEY (Customer_ID) REFERENCES CustomerTable(Customer_ID)
		)`,
		`CREATE TABLE IF NOT EXISTS TransactionLog (
			Transaction_ID TEXT PRIMARY KEY,
			Customer_ID TEXT,
			Transaction_Date DATE,
			Transaction_Type TEXT,
			Amount REAL,
			Payment_Mode TEXT,
			Status TEXT,
			Channel TEXT,
			Merchant_ID TEXT,
			FOREIGN KEY (Customer_ID) REFERENCES CustomerTable(Customer_ID)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error creating schema: %w", err)
		}
	}
	return nil
}

// VerifySchema checks that all required tables exist in the store.
func VerifySchema(db *sql.DB) error {
	tables := []string{"CustomerTable", "SalesTable", "TransactionLog"}

	for _, table := range tables {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			return fmt.Errorf("required table %s does not exist", table)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
