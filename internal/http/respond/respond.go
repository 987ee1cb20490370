// Package respond holds the request decoding and response writing shared
// by every handler.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/auth"
	"github.com/ehfoto/backoffice/internal/claim"
	"github.com/ehfoto/backoffice/internal/importer"
	"github.com/ehfoto/backoffice/internal/inventory"
	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/loan"
	"github.com/ehfoto/backoffice/internal/payroll"
	"github.com/ehfoto/backoffice/internal/settings"
	"github.com/ehfoto/backoffice/internal/staff"
	"github.com/ehfoto/backoffice/internal/transaction"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var statusByErr = []struct {
	err    error
	status int
}{
	{staff.ErrNotFound, http.StatusNotFound},
	{inventory.ErrNotFound, http.StatusNotFound},
	{loan.ErrNotFound, http.StatusNotFound},
	{invoice.ErrNotFound, http.StatusNotFound},
	{payroll.ErrNotFound, http.StatusNotFound},
	{claim.ErrNotFound, http.StatusNotFound},
	{transaction.ErrNotFound, http.StatusNotFound},

	{staff.ErrInvalid, http.StatusBadRequest},
	{staff.ErrPasswordTooShort, http.StatusBadRequest},
	{inventory.ErrInvalid, http.StatusBadRequest},
	{loan.ErrInvalid, http.StatusBadRequest},
	{invoice.ErrInvalid, http.StatusBadRequest},
	{invoice.ErrIneligibleAssignee, http.StatusBadRequest},
	{payroll.ErrInvalid, http.StatusBadRequest},
	{payroll.ErrDuplicateJob, http.StatusBadRequest},
	{claim.ErrInvalid, http.StatusBadRequest},
	{claim.ErrReasonRequired, http.StatusBadRequest},
	{transaction.ErrInvalid, http.StatusBadRequest},
	{settings.ErrInvalidURL, http.StatusBadRequest},
	{importer.ErrNoHeader, http.StatusBadRequest},
	{importer.ErrInvalidRow, http.StatusBadRequest},

	{auth.ErrInvalidCredentials, http.StatusUnauthorized},
	{auth.ErrSessionNotFound, http.StatusUnauthorized},

	{invoice.ErrForbidden, http.StatusForbidden},

	{staff.ErrDuplicateCode, http.StatusConflict},
	{staff.ErrInUse, http.StatusConflict},
	{inventory.ErrInUse, http.StatusConflict},
	{loan.ErrItemUnavailable, http.StatusConflict},
	{loan.ErrAlreadyReturned, http.StatusConflict},
	{invoice.ErrAlreadyPaid, http.StatusConflict},
	{invoice.ErrJobPaid, http.StatusConflict},
	{invoice.ErrNotAssigned, http.StatusConflict},
	{payroll.ErrJobNotEligible, http.StatusConflict},
	{claim.ErrAlreadyProcessed, http.StatusConflict},
}

// StatusOf maps a service error to its HTTP status. Unknown errors are 500.
func StatusOf(err error) int {
	for _, e := range statusByErr {
		if errors.Is(err, e.err) {
			return e.status
		}
	}

	return http.StatusInternalServerError
}

// Error writes err with the matching status. Internal errors are logged
// and hidden from the client.
func Error(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error("failed to handle request", "error", err)
		http.Error(w, "Internal server error", status)

		return
	}

	http.Error(w, err.Error(), status)
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type validationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Decode reads a JSON body into dst and runs its validate tags. On failure
// it writes a 400 and returns false.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decode(w, r, dst, false)
}

// DecodeOptional is Decode for endpoints whose body may be omitted. An empty
// body leaves dst at its zero value, which is still validated.
func DecodeOptional(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decode(w, r, dst, true)
}

func decode(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !(optional && errors.Is(err, io.EOF)) {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return false
		}

		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}

		JSON(w, http.StatusBadRequest, validationResponse{Message: "validation failed", Errors: fields})

		return false
	}

	return true
}

// ID parses the {id} URL parameter. On failure it writes a 400.
func ID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return URLUUID(w, r, "id")
}

func URLUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		http.Error(w, "invalid "+param, http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

// QueryUUID parses an optional uuid query parameter. A present but
// malformed value writes a 400 and returns ok == false.
func QueryUUID(w http.ResponseWriter, r *http.Request, name string) (*uuid.UUID, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, true
	}

	id, err := uuid.Parse(s)
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return nil, false
	}

	return &id, true
}
