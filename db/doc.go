// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL is portable between PostgreSQL and SQLite.

# Tables

The schema includes:

  - code: Single-use invitation codes, provisioned out-of-band
  - submission: Accepted registrations, one per code

# Relationships

	code 1──1 submission (policy: enforced by the is_used flag, not a schema
	constraint; the recorder flips the flag in the same transaction as the
	insert)

# Constraints

  - code: unique index on LOWER(code) - lookups are case-insensitive
  - submission.phone: UNIQUE, digits-only canonical form
  - submission.grade: CHECK against the fixed class-standing labels
  - submission.age: CHECK 18-99
*/
package db
