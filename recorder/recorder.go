// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recorder

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/oguzatay/etkinlik-kayit/models"
	"github.com/oguzatay/etkinlik-kayit/validate"
)

var (
	// ErrDuplicatePhone: a submission with this phone number already exists.
	ErrDuplicatePhone = errors.New("phone number already registered")

	// ErrCodeConflict: the referenced code was invalid or already used at
	// commit time. With concurrent submissions on one code, every loser of
	// the conditional update gets this.
	ErrCodeConflict = errors.New("code invalid or already used")

	// ErrPartialCommit: both writes were issued but the commit outcome is
	// unknown. Needs an operator; blind retry risks a double registration.
	ErrPartialCommit = errors.New("commit outcome unknown")

	// ErrStoreUnavailable: the store could not be reached or answered with a
	// transport-level failure. Not a data problem.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Recorder validates registrant data and persists accepted submissions,
// retiring the authorizing code in the same transaction.
type Recorder struct {
	db *sql.DB
}

func New(db *sql.DB) *Recorder {
	return &Recorder{db: db}
}

// Submit validates candidate and, if it passes, records the submission and
// marks codeID used as one atomic unit. Validation failures are returned as
// *validate.ValidationError and never touch the store.
//
// The one-submission-per-code guarantee rests on the conditional update
// `SET is_used = TRUE WHERE ... is_used = FALSE` running in the same
// transaction as the insert: either both take effect or neither does.
// The phone pre-check is only a friendly fast path; the UNIQUE constraint
// on submission.phone is what actually holds under concurrency.
func (r *Recorder) Submit(codeID string, candidate models.RegistrantInput) (string, error) {
	if verr := validate.Registrant(candidate); verr != nil {
		return "", verr
	}
	if codeID == "" {
		return "", ErrCodeConflict
	}

	phone := validate.NormalizePhone(candidate.Phone)

	// Fast-path duplicate check for a clean user-facing error
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM submission WHERE phone = $1)
	`, phone).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if exists {
		return "", ErrDuplicatePhone
	}

	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	// Conditional flip: succeeds for exactly one submission per code,
	// regardless of interleaving. Zero rows means the code never existed or
	// someone else already won it. Running it first also takes the row lock
	// before any insert work happens.
	res, err := tx.Exec(`
		UPDATE code SET is_used = TRUE WHERE id = $1 AND is_used = FALSE
	`, codeID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if affected != 1 {
		return "", ErrCodeConflict
	}

	submissionID := uuid.New().String()
	_, err = tx.Exec(`
		INSERT INTO submission (id, name, email, phone, department, grade, age, code_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, submissionID, candidate.Name, candidate.Email, phone,
		candidate.Department, candidate.Grade, *candidate.Age, codeID)

	if err != nil {
		// The flag flip rolls back with the failed insert
		if isUniqueViolation(err) {
			return "", ErrDuplicatePhone
		}
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		// Both statements went through; the commit answer is lost. Don't
		// report success and don't pretend nothing happened.
		slog.Error("submission commit outcome unknown",
			"error", err,
			"submission_id", submissionID,
			"code_id", codeID,
		)
		return "", fmt.Errorf("%w: %v", ErrPartialCommit, err)
	}

	return submissionID, nil
}

// isUniqueViolation recognizes a UNIQUE constraint rejection from either
// supported driver (pq error class 23505, sqlite message text).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
