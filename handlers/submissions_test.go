// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oguzatay/etkinlik-kayit/models"
	"github.com/oguzatay/etkinlik-kayit/testutil"
)

func validFormData() models.RegistrantInput {
	age := 21
	return models.RegistrantInput{
		Name:       "Ada Yılmaz",
		Email:      "ada@example.com",
		Phone:      "0(555)-123-45-67",
		Department: "CS",
		Grade:      models.GradeSecond,
		Age:        &age,
	}
}

func TestSubmit_Created(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSubmissionHandler(db, cfg)
	codeID := testutil.CreateTestCode(t, db, "abc123", false)

	req := testutil.MakeRequest("POST", "/submissions",
		models.SubmitRequest{FormData: validFormData(), CodeID: codeID}, nil)
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 201)

	var resp models.SubmitResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.Success {
		t.Error("Expected success=true")
	}
	if resp.SubmissionID == "" {
		t.Error("Expected a submission_id")
	}
	if resp.RedirectSeconds != models.RedirectSeconds {
		t.Errorf("Expected redirect_seconds %d, got %d", models.RedirectSeconds, resp.RedirectSeconds)
	}

	if !testutil.CodeIsUsed(t, db, codeID) {
		t.Error("Successful submission did not retire the code")
	}
}

func TestSubmit_ValidationError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSubmissionHandler(db, cfg)
	codeID := testutil.CreateTestCode(t, db, "abc123", false)

	formData := validFormData()
	formData.Name = ""

	req := testutil.MakeRequest("POST", "/submissions",
		models.SubmitRequest{FormData: formData, CodeID: codeID}, nil)
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 400)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "İsim alanı zorunludur" {
		t.Errorf("Expected name-required message, got %q", resp.Message)
	}

	if testutil.CodeIsUsed(t, db, codeID) {
		t.Error("Validation failure consumed the code")
	}
}

func TestSubmit_DuplicatePhone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSubmissionHandler(db, cfg)
	firstCode := testutil.CreateTestCode(t, db, "first", false)
	secondCode := testutil.CreateTestCode(t, db, "second", false)

	req := testutil.MakeRequest("POST", "/submissions",
		models.SubmitRequest{FormData: validFormData(), CodeID: firstCode}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, 201)

	req = testutil.MakeRequest("POST", "/submissions",
		models.SubmitRequest{FormData: validFormData(), CodeID: secondCode}, nil)
	w = httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 400)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != models.MsgDuplicatePhone {
		t.Errorf("Expected %q, got %q", models.MsgDuplicatePhone, resp.Message)
	}
}

func TestSubmit_UsedCodeConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSubmissionHandler(db, cfg)
	codeID := testutil.CreateTestCode(t, db, "spent", true)

	req := testutil.MakeRequest("POST", "/submissions",
		models.SubmitRequest{FormData: validFormData(), CodeID: codeID}, nil)
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 409)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != models.MsgInvalidOrUsedCode {
		t.Errorf("Expected %q, got %q", models.MsgInvalidOrUsedCode, resp.Message)
	}
}

func TestSubmit_MissingCodeID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSubmissionHandler(db, cfg)

	req := testutil.MakeRequest("POST", "/submissions",
		models.SubmitRequest{FormData: validFormData()}, nil)
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestSubmit_InvalidJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSubmissionHandler(db, cfg)

	req := httptest.NewRequest("POST", "/submissions", strings.NewReader("{broken"))
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestGrades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSubmissionHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/grades", nil, nil)
	w := httptest.NewRecorder()

	handler.Grades(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.GradesResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Grades) != len(models.Grades) {
		t.Fatalf("Expected %d grades, got %d", len(models.Grades), len(resp.Grades))
	}
	if resp.Grades[0] != models.GradePrep || resp.Grades[len(resp.Grades)-1] != models.GradeOther {
		t.Errorf("Grades out of form order: %v", resp.Grades)
	}
}
