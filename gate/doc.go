// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gate checks invitation codes before a registration is allowed.

# Redemption

Redeem normalizes the user's input (trim, lower-case) and looks up a code
that exists and is unused:

	codeID, err := g.Redeem("ABC123")
	if errors.Is(err, gate.ErrInvalidOrUsed) {
		// nonexistent or already redeemed
	}

The returned code_id authorizes exactly one later submission.

# Deferred Flip

Redeem never writes. The is_used flag is flipped only by the recorder, inside
the same transaction that inserts the submission, so checking a code and
abandoning the form leaves it valid. An earlier revision of this flow burned
codes at check time; that behavior is intentionally gone.
*/
package gate
