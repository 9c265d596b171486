// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/oguzatay/etkinlik-kayit/cliparse"
	"github.com/oguzatay/etkinlik-kayit/gate"
	"github.com/oguzatay/etkinlik-kayit/handlers"
	"github.com/oguzatay/etkinlik-kayit/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	codeHandler := handlers.NewCodeHandler(db, cfg)
	submissionHandler := handlers.NewSubmissionHandler(db, cfg)
	codeGate := gate.New(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Code redemption (public)
	mux.HandleFunc("POST /codes/redeem", middleware.WithLogging(codeHandler.Redeem))

	// Form pages: entry is gated on the ?code= parameter, invalid-code is the
	// redirect target for codes that fail the gate
	mux.HandleFunc("GET /submit-form", middleware.WithLogging(
		middleware.WithCodeGate(codeGate, codeHandler.FormEntry)))
	mux.HandleFunc("GET /invalid-code", middleware.WithLogging(codeHandler.InvalidCode))

	// Registration (public)
	mux.HandleFunc("POST /submissions", middleware.WithLogging(submissionHandler.Submit))
	mux.HandleFunc("GET /grades", middleware.WithLogging(submissionHandler.Grades))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("etkinlik-kayit API v1"))
	})

	return mux
}
