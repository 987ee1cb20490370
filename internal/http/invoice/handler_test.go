package invoice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ehfoto/backoffice/internal/calendar"
	invoiceHandler "github.com/ehfoto/backoffice/internal/http/invoice"
	"github.com/ehfoto/backoffice/internal/invoice"
)

func newRouter(t *testing.T) (http.Handler, *invoice.MockRepository, *invoice.MockStaffGetter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	staff := invoice.NewMockStaffGetter(ctrl)

	today := calendar.Fixed(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	svc := invoice.NewService(repo, staff, invoice.DefaultPrefix, today)

	r := chi.NewRouter()
	invoiceHandler.NewHandler(svc).Routes(r)

	return r, repo, staff
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(repo *invoice.MockRepository, tx *invoice.MockCreateTx)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Created",
			body: `{"client":"Aina & Hakim","date":"2024-06-15","items":[{"name":"Pakej Nikah","price":150000}],"deposit":50000}`,
			setupMock: func(repo *invoice.MockRepository, tx *invoice.MockCreateTx) {
				repo.EXPECT().BeginCreate(gomock.Any(), invoice.DefaultPrefix).Return(tx, nil)
				tx.EXPECT().ListNumbers(gomock.Any(), invoice.DefaultPrefix).Return([]string{"INV-EHFA-0007"}, nil)
				tx.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						inv.ID = uuid.New()
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"invoice_no":"INV-EHFA-0008"`,
		},
		{
			name:       "NoItems",
			body:       `{"client":"Aina","items":[]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Items":"min"`,
		},
		{
			name:       "BadDate",
			body:       `{"client":"Aina","date":"15/06/2024","items":[{"name":"x","price":1}]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo, _ := newRouter(t)
			tx := invoice.NewMockCreateTx(gomock.NewController(t))

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_Get(t *testing.T) {
	router, repo, _ := newRouter(t)

	id := uuid.New()
	repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&invoice.Invoice{
		ID:      id,
		Number:  "INV-EHFA-0001",
		Date:    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Items:   []invoice.Item{{Name: "Outdoor", Price: 80000}},
		Total:   80000,
		Deposit: 30000,
		Status:  invoice.StatusUnpaid,
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+id.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-05-02", body["date"])
	assert.EqualValues(t, 50000, body["balance"])
	assert.Equal(t, "Belum Dibayar", body["status"])
}

func TestHandler_ErrorStatuses(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setupMock  func(repo *invoice.MockRepository)
		wantStatus int
	}{
		{
			name:       "MalformedID",
			method:     http.MethodGet,
			path:       "/not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "NotFound",
			method: http.MethodGet,
			path:   "/" + id.String(),
			setupMock: func(repo *invoice.MockRepository) {
				repo.EXPECT().GetInvoice(gomock.Any(), id).Return(nil, invoice.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "PayTwice",
			method: http.MethodPost,
			path:   "/" + id.String() + "/pay",
			setupMock: func(repo *invoice.MockRepository) {
				repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&invoice.Invoice{ID: id, Status: invoice.StatusPaid}, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "UnknownRole",
			method:     http.MethodPut,
			path:       "/" + id.String() + "/jobs/driver",
			body:       `{"staff_id":null}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "CompleteUnassigned",
			method: http.MethodPost,
			path:   "/" + id.String() + "/jobs/editor/complete",
			setupMock: func(repo *invoice.MockRepository) {
				repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&invoice.Invoice{ID: id}, nil)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo, _ := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
