package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/sedam/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondJSON(rec, http.StatusCreated, map[string]int{"id": 7})

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var body map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["id"] != 7 {
		t.Errorf("body: got %v", body)
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handlers.RespondError(rec, logger, http.StatusNotFound, errors.New("policy not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "policy not found" {
		t.Errorf("error: got %q", body["error"])
	}
}

func TestRespondAttachment(t *testing.T) {
	rec := httptest.NewRecorder()

	err := handlers.RespondAttachment(rec, "application/pdf", "정책 보고서.pdf", 5, strings.NewReader("%PDF-"))
	if err != nil {
		t.Fatal(err)
	}

	if got := rec.Header().Get("Content-Length"); got != "5" {
		t.Errorf("content length: got %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(got, "attachment;") {
		t.Errorf("disposition: got %q", got)
	}
	if rec.Body.String() != "%PDF-" {
		t.Errorf("body: got %q", rec.Body.String())
	}
}
