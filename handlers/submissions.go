// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oguzatay/etkinlik-kayit/cliparse"
	"github.com/oguzatay/etkinlik-kayit/middleware"
	"github.com/oguzatay/etkinlik-kayit/models"
	"github.com/oguzatay/etkinlik-kayit/recorder"
	"github.com/oguzatay/etkinlik-kayit/validate"
)

type SubmissionHandler struct {
	recorder *recorder.Recorder
	cfg      cliparse.Config
}

func NewSubmissionHandler(db *sql.DB, cfg cliparse.Config) *SubmissionHandler {
	return &SubmissionHandler{recorder: recorder.New(db), cfg: cfg}
}

// Submit handles POST /submissions
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CodeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidOrUsedCode)
		return
	}

	submissionID, err := h.recorder.Submit(req.CodeID, req.FormData)
	if err != nil {
		h.writeSubmitError(w, req.CodeID, err)
		return
	}

	slog.Info("submission recorded", "submission_id", submissionID, "code_id", req.CodeID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		Success:         true,
		SubmissionID:    submissionID,
		RedirectSeconds: models.RedirectSeconds,
	})
}

// writeSubmitError maps recorder errors onto HTTP responses. Every failure
// surfaces one human-readable message; nothing is swallowed.
func (h *SubmissionHandler) writeSubmitError(w http.ResponseWriter, codeID string, err error) {
	var verr *validate.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, recorder.ErrDuplicatePhone):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgDuplicatePhone)
	case errors.Is(err, recorder.ErrCodeConflict):
		middleware.ErrorResponse(w, http.StatusConflict, models.MsgInvalidOrUsedCode)
	case errors.Is(err, recorder.ErrPartialCommit):
		// Already logged with ids by the recorder; this one needs a person
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgPartialCommit)
	default:
		slog.Error("failed to record submission", "error", err, "code_id", codeID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgGenericError)
	}
}

// Grades handles GET /grades
// Serves the class-standing labels so the form select and the server-side
// ruleset can't drift apart.
func (h *SubmissionHandler) Grades(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.GradesResponse{
		Grades: models.Grades,
	})
}
