package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskdeck/taskdeck-go/internal/service"
)

func TestWriteResourceError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{service.ErrTitleRequired, http.StatusBadRequest},
		{service.ErrTitleTooLong, http.StatusBadRequest},
		{service.ErrDescriptionTooLong, http.StatusBadRequest},
		{service.ErrInvalidDueDate, http.StatusBadRequest},
		{service.ErrNotFound, http.StatusNotFound},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeResourceError(rec, tc.err)

		if rec.Code != tc.wantStatus {
			t.Errorf("writeResourceError(%v) status = %d, want %d", tc.err, rec.Code, tc.wantStatus)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("writeResourceError(%v) Content-Type = %q, want application/json", tc.err, ct)
		}
	}
}

func TestWriteResourceErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeResourceError(rec, errors.New("dial tcp 127.0.0.1:3306: connection refused"))

	if body := rec.Body.String(); body != "{\"error\":\"internal server error\"}\n" {
		t.Errorf("internal errors must not leak detail, got body %q", body)
	}
}
