// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RedeemCodeRequest: code
  - SubmitRequest: formData (RegistrantInput), code_id
  - RegistrantInput: name, email, phone, department, grade, age

RegistrantInput carries the validate tags that make up the form ruleset;
package validate executes them.

# Response Types

Types for JSON responses:

  - RedeemCodeResponse: code_id
  - SubmitResponse: success, submission_id, redirect_seconds
  - GradesResponse: grades
  - FormEntryResponse: code_id
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Code: invitation token with its single-use flag
  - Submission: accepted registration, phone in digits-only form

# Constants

Grade labels (form select options):

	GradePrep   = "Hazırlık Sınıfı"
	GradeFirst  = "1. Sınıf"
	GradeSecond = "2. Sınıf"
	GradeThird  = "3. Sınıf"
	GradeFourth = "4. Sınıf"
	GradeOther  = "Diğer"

Countdown before the thank-you page navigates home:

	RedirectSeconds = 5

User-facing messages are fixed Turkish copy (Msg* constants), shared by every
layer that reports an error near the form.
*/
package models
