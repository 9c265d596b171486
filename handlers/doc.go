// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the etkinlik-kayit API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - CodeHandler: Code redemption and the gated form-entry/invalid-code pages
  - SubmissionHandler: Registration submission and form metadata

Handlers are created via constructor functions that accept *sql.DB and Config:

	codeHandler := handlers.NewCodeHandler(db, cfg)

# Registration Flow

A visitor moves through three states: code-check → submit-form → thank-you

	POST /codes/redeem → Redeem (returns code_id)
	GET  /submit-form  → FormEntry (gated on ?code=)
	POST /submissions  → Submit (persists, retires the code)

On success, Submit responds with redirect_seconds; the client counts down on
the thank-you view and navigates back to the code-check entry, replacing the
history entry so Back cannot reach the form again.

# Error Mapping

Recorder outcomes map onto HTTP statuses in writeSubmitError:

	validation failure   → 400, first violated rule's message
	duplicate phone      → 400, "Bu telefon numarası zaten kayıt edilmiş."
	code invalid or used → 409, "Geçersiz ya da kullanılmış bir kod girdiniz."
	partial commit       → 500, operator-facing message
	store unavailable    → 500, generic message

Every failure carries one human-readable message; none claims success while a
write is outstanding.
*/
package handlers
