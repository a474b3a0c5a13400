// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema, preventing drift between test and production. Do not
// hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/shiftops/internal/db"
	"github.com/example/shiftops/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// testHeader returns a valid report header with overridable basics.
func testHeader(date, shift, engineer string) *secondary.ReportHeaderRecord {
	if date == "" {
		date = "2025-03-10"
	}
	if shift == "" {
		shift = "Day"
	}
	if engineer == "" {
		engineer = "Chris McGhee"
	}
	return &secondary.ReportHeaderRecord{
		Date:          date,
		Shift:         shift,
		Engineer:      engineer,
		HandoverNotes: "All quiet",
		RadiosCharged: true,
		PhonesWorking: true,
	}
}

// seedInventoryItem inserts a test inventory row and returns its part number.
func seedInventoryItem(t *testing.T, db *sql.DB, part string, stock, minStock int) string {
	t.Helper()
	if part == "" {
		part = "ART-100"
	}
	_, err := db.Exec(
		"INSERT INTO spares_inventory (art_number, description, location, category, stock_level, min_stock_level) VALUES (?, 'Drive belt', 'A1-03', 'General', ?, ?)",
		part, stock, minStock,
	)
	if err != nil {
		t.Fatalf("failed to seed inventory item: %v", err)
	}
	return part
}
