// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the etkinlik-kayit API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Code redemption (public):

	POST /codes/redeem - Check a code, get the authorizing code_id

Form pages (public; /submit-form sits behind the code gate):

	GET /submit-form?code=... - Form entry data for a valid code
	GET /invalid-code         - Redirect target for rejected codes

Registration (public):

	POST /submissions - Validate and persist a registration
	GET  /grades      - Accepted class-standing labels

# Handler Initialization

The router creates handler instances with dependency injection:

	codeHandler := handlers.NewCodeHandler(db, cfg)
	submissionHandler := handlers.NewSubmissionHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
