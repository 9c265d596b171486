// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package recorder validates and persists registrations, retiring the
authorizing code in the same transaction.

# Submit

	submissionID, err := rec.Submit(codeID, input)

Order of work:

 1. Validate the registrant (package validate); failures never touch the store.
 2. Fast-path duplicate-phone check for a clean user-facing error.
 3. One transaction: UPDATE code SET is_used = TRUE WHERE id = $1 AND
    is_used = FALSE, then insert the submission. Zero rows affected means the
    code was taken or never existed; a failed insert rolls the flip back.

# Concurrency

The conditional update is the one-submission-per-code guarantee: under N
concurrent submits for the same code, exactly one transaction flips the flag
and commits, the rest get ErrCodeConflict. Phone uniqueness is enforced by
the UNIQUE constraint on submission.phone; the pre-check is not relied on.

# Errors

  - *validate.ValidationError: first violated form rule
  - ErrDuplicatePhone: phone already registered (pre-check or constraint)
  - ErrCodeConflict: code invalid or already used at commit time
  - ErrPartialCommit: commit outcome unknown after both writes; needs an
    operator, not a retry
  - ErrStoreUnavailable: transport/backend failure
*/
package recorder
