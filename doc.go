// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the etkinlik-kayit API server.

etkinlik-kayit is an invitation-only event registration service: a visitor
enters a single-use code, fills in the registration form, and the accepted
submission retires the code atomically.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3417 -d "postgres://..."

For a local run without a Postgres server:

	go run main.go -t sqlite -d "file:kayit.db"

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string

Optional settings:

  - PORT (-p): Server port (default: 3417)
  - DATABASE_TYPE (-t): postgres (default) or sqlite

# Architecture

The server uses a handler-based architecture with dependency injection:

  - gate: Code redemption check (read-only)
  - recorder: Registrant validation and the transactional submit
  - validate: The single declarative form ruleset and phone helpers
  - handlers: HTTP request handlers (codes, submissions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, code gate, JSON helpers
  - models: Request/response types and fixed form copy
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
