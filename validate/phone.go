// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import "strings"

// NormalizePhone strips all formatting punctuation, leaving the digits-only
// canonical form stored in the database.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders up to 11 digits in the display mask 0(XXX)-XXX-XX-XX.
// Partial input yields a partial mask, which is what the form shows while the
// user is still typing.
func FormatPhone(raw string) string {
	digits := NormalizePhone(raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	var b strings.Builder
	if len(digits) > 0 {
		b.WriteByte(digits[0])
	}
	if len(digits) > 1 {
		b.WriteByte('(')
		b.WriteString(digits[1:min(4, len(digits))])
	}
	if len(digits) >= 4 {
		b.WriteByte(')')
	}
	if len(digits) > 4 {
		b.WriteByte('-')
		b.WriteString(digits[4:min(7, len(digits))])
	}
	if len(digits) > 7 {
		b.WriteByte('-')
		b.WriteString(digits[7:min(9, len(digits))])
	}
	if len(digits) > 9 {
		b.WriteByte('-')
		b.WriteString(digits[9:])
	}

	return b.String()
}
