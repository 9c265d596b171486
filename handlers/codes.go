// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oguzatay/etkinlik-kayit/cliparse"
	"github.com/oguzatay/etkinlik-kayit/gate"
	"github.com/oguzatay/etkinlik-kayit/middleware"
	"github.com/oguzatay/etkinlik-kayit/models"
)

type CodeHandler struct {
	gate *gate.Gate
	cfg  cliparse.Config
}

func NewCodeHandler(db *sql.DB, cfg cliparse.Config) *CodeHandler {
	return &CodeHandler{gate: gate.New(db), cfg: cfg}
}

// Redeem handles POST /codes/redeem
func (h *CodeHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req models.RedeemCodeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	codeID, err := h.gate.Redeem(req.Code)
	if errors.Is(err, gate.ErrInvalidOrUsed) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgInvalidOrUsedCode)
		return
	}
	if err != nil {
		slog.Error("failed to check code", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgGenericError)
		return
	}

	slog.Info("code redeemed", "code_id", codeID)

	middleware.JSONResponse(w, http.StatusOK, models.RedeemCodeResponse{
		CodeID: codeID,
	})
}

// FormEntry handles GET /submit-form
// It sits behind middleware.WithCodeGate, so a request that reaches it with a
// ?code= parameter has already passed the read-only check. The response hands
// the client the code_id it needs for the later POST /submissions.
func (h *CodeHandler) FormEntry(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("code")
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidOrUsedCode)
		return
	}

	codeID, err := h.gate.Redeem(raw)
	if errors.Is(err, gate.ErrInvalidOrUsed) {
		// Gate or not, the code may have been consumed in between
		http.Redirect(w, r, "/invalid-code", http.StatusFound)
		return
	}
	if err != nil {
		slog.Error("failed to check code", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgGenericError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FormEntryResponse{
		CodeID: codeID,
	})
}

// InvalidCode handles GET /invalid-code, the redirect target for gated pages
func (h *CodeHandler) InvalidCode(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusGone, models.MsgInvalidOrUsedCode)
}
