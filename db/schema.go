// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The SQL is kept portable between PostgreSQL and SQLite so the -t sqlite
// database type works for local runs.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Invitation codes. Provisioned out-of-band by an admin; this application
-- only ever reads them and flips is_used, never inserts or deletes.
CREATE TABLE IF NOT EXISTS code (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL,
    is_used BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Lookup is case-insensitive; uniqueness has to hold on the folded value.
CREATE UNIQUE INDEX IF NOT EXISTS idx_code_lower ON code (LOWER(code));
CREATE INDEX IF NOT EXISTS idx_code_is_used ON code(is_used);

-- Accepted registrations. phone is the digits-only canonical form; the
-- UNIQUE constraint is the authoritative one-person-one-registration guard.
CREATE TABLE IF NOT EXISTS submission (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL UNIQUE,
    department TEXT NOT NULL,
    grade TEXT NOT NULL CHECK (grade IN ('Hazırlık Sınıfı', '1. Sınıf', '2. Sınıf', '3. Sınıf', '4. Sınıf', 'Diğer')),
    age INTEGER NOT NULL CHECK (age >= 18 AND age <= 99),
    code_id TEXT NOT NULL REFERENCES code(id),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submission_code_id ON submission(code_id);
`
