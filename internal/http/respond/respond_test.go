package respond_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ehfoto/backoffice/internal/claim"
	"github.com/ehfoto/backoffice/internal/http/respond"
	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/staff"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{staff.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: client is required", invoice.ErrInvalid), http.StatusBadRequest},
		{invoice.ErrForbidden, http.StatusForbidden},
		{claim.ErrAlreadyProcessed, http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, respond.StatusOf(tt.err))
		})
	}
}

func TestError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestDecode(t *testing.T) {
	type body struct {
		Name   string `json:"name" validate:"required"`
		Amount int64  `json:"amount" validate:"gt=0"`
	}

	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   string
	}{
		{"Valid", `{"name":"x","amount":5}`, true, ""},
		{"Malformed", `{"name":`, false, "invalid request body"},
		{"FailsValidation", `{"name":"","amount":0}`, false, `"Amount":"gt"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.input))
			rec := httptest.NewRecorder()

			var dst body

			ok := respond.Decode(rec, req, &dst)
			assert.Equal(t, tt.wantOK, ok)

			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), tt.want)
			}
		})
	}
}

func TestDecodeOptional(t *testing.T) {
	type body struct {
		Note string `json:"note" validate:"max=5"`
	}

	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantNote string
	}{
		{"EmptyBody", "", true, ""},
		{"WithNote", `{"note":"ok"}`, true, "ok"},
		{"Malformed", `{"note":`, false, ""},
		{"FailsValidation", `{"note":"too long"}`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.input))
			rec := httptest.NewRecorder()

			var dst body

			ok := respond.DecodeOptional(rec, req, &dst)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.wantNote, dst.Note)
			} else {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestDecode_RequiresBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	rec := httptest.NewRecorder()

	var dst struct{}

	assert.False(t, respond.Decode(rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
