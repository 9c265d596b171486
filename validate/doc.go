// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate holds the single authoritative copy of the registration form
ruleset, plus phone number helpers.

# Ruleset

Rules live as validator/v10 tags on models.RegistrantInput; Registrant
executes them and reports the first violation with its user-facing message:

	if verr := validate.Registrant(input); verr != nil {
		// verr.Field, verr.Message
	}

Custom tags:

  - phonemask: input must match 0(XXX)-XXX-XX-XX and strip to 11 digits
  - grade: one of the fixed class-standing labels

The client duplicates these rules for inline feedback, but only the
server-side evaluation decides.

# Phone Helpers

NormalizePhone strips formatting punctuation to the digits-only stored form;
FormatPhone renders digits back into the display mask. Formatting then
re-stripping reproduces the original digits.
*/
package validate
