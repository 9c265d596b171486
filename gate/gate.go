// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gate

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrUsed means no unused code matches the presented text. The
// response does not distinguish "never existed" from "already redeemed".
var ErrInvalidOrUsed = errors.New("invalid or used code")

// Gate checks invitation codes before a registration is allowed.
type Gate struct {
	db *sql.DB
}

func New(db *sql.DB) *Gate {
	return &Gate{db: db}
}

// Normalize folds raw user input into lookup form: surrounding whitespace
// trimmed, then lower-cased. Applied here and nowhere else, so the check and
// any later use of the code text agree.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Redeem looks up an unused code matching raw and returns its id, the opaque
// reference that authorizes exactly one submission. The lookup is read-only:
// the used flag is flipped only when a submission commits, so checking a code
// and walking away does not burn it.
func (g *Gate) Redeem(raw string) (string, error) {
	code := Normalize(raw)
	if code == "" {
		return "", ErrInvalidOrUsed
	}

	var codeID string
	err := g.db.QueryRow(`
		SELECT id FROM code WHERE LOWER(code) = $1 AND is_used = FALSE
	`, code).Scan(&codeID)

	if err == sql.ErrNoRows {
		return "", ErrInvalidOrUsed
	}
	if err != nil {
		return "", fmt.Errorf("code lookup failed: %w", err)
	}

	return codeID, nil
}
