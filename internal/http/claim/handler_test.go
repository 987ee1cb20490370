package claim_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ehfoto/backoffice/internal/calendar"
	"github.com/ehfoto/backoffice/internal/claim"
	claimHandler "github.com/ehfoto/backoffice/internal/http/claim"
)

var processDay = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) (http.Handler, *claim.MockRepository, *claim.MockApproveTx) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := claim.NewMockRepository(ctrl)
	tx := claim.NewMockApproveTx(ctrl)

	svc := claim.NewService(repo, calendar.Fixed(processDay))

	r := chi.NewRouter()
	claimHandler.NewHandler(svc).Routes(r)

	return r, repo, tx
}

func pendingClaim(id uuid.UUID) *claim.Claim {
	return &claim.Claim{ID: id, StaffName: "Aiman", Type: "Fuel", Amount: 4500, Status: claim.StatusPending}
}

func TestHandler_Approve(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantNote string
	}{
		{"NoBody", "", ""},
		{"WithNote", `{"note":"  paid cash "}`, "paid cash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo, tx := newRouter(t)
			id := uuid.New()

			repo.EXPECT().GetClaim(gomock.Any(), id).Return(pendingClaim(id), nil)
			repo.EXPECT().BeginApprove(gomock.Any()).Return(tx, nil)
			tx.EXPECT().Approve(gomock.Any(), id, tt.wantNote, processDay).Return(nil)
			tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().Commit().Return(nil)
			tx.EXPECT().Rollback().Return(nil)

			req := httptest.NewRequest(http.MethodPost, "/"+id.String()+"/approve", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"Approved"`)
		})
	}
}

func TestHandler_Approve_MalformedBody(t *testing.T) {
	router, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/"+uuid.NewString()+"/approve", strings.NewReader(`{"note":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestHandler_Reject(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(repo *claim.MockRepository, id uuid.UUID)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "NoBody",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantBody:   claim.ErrReasonRequired.Error(),
		},
		{
			name:       "BlankReason",
			body:       `{"note":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   claim.ErrReasonRequired.Error(),
		},
		{
			name: "Rejected",
			body: `{"note":"no receipt"}`,
			setupMock: func(repo *claim.MockRepository, id uuid.UUID) {
				repo.EXPECT().GetClaim(gomock.Any(), id).Return(pendingClaim(id), nil)
				repo.EXPECT().Reject(gomock.Any(), id, "no receipt", processDay).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Rejected"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo, _ := newRouter(t)
			id := uuid.New()

			if tt.setupMock != nil {
				tt.setupMock(repo, id)
			}

			req := httptest.NewRequest(http.MethodPost, "/"+id.String()+"/reject", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
