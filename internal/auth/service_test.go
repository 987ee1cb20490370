package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ehfoto/backoffice/internal/auth"
	"github.com/ehfoto/backoffice/internal/staff"
)

var admin = auth.AdminCredentials{Username: "admin", Password: "admin123"}

func staffWithPassword(t *testing.T, code, password string) *staff.Staff {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &staff.Staff{ID: uuid.New(), Code: code, Name: "Aiman", Position: staff.PositionEditor, PasswordHash: string(hash)}
}

func TestService_Login(t *testing.T) {
	aiman := staffWithPassword(t, "EH001", "rahsia")

	tests := []struct {
		name       string
		identifier string
		password   string
		setupMock  func(sessions *auth.MockRepository, finder *auth.MockStaffFinder)
		wantKind   auth.Kind
		wantErr    error
	}{
		{
			name:       "AdminCaseInsensitive",
			identifier: "ADMIN",
			password:   "admin123",
			setupMock: func(sessions *auth.MockRepository, _ *auth.MockStaffFinder) {
				sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any(), time.Hour).Return(nil)
			},
			wantKind: auth.KindAdmin,
		},
		{
			name:       "StaffCodeCaseInsensitive",
			identifier: "eh001",
			password:   "rahsia",
			setupMock: func(sessions *auth.MockRepository, finder *auth.MockStaffFinder) {
				finder.EXPECT().GetByCode(gomock.Any(), "eh001").Return(aiman, nil)
				sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any(), time.Hour).Return(nil)
			},
			wantKind: auth.KindStaff,
		},
		{
			name:       "AdminWrongPasswordFallsThroughToStaff",
			identifier: "admin",
			password:   "nope",
			setupMock: func(_ *auth.MockRepository, finder *auth.MockStaffFinder) {
				finder.EXPECT().GetByCode(gomock.Any(), "admin").Return(nil, staff.ErrNotFound)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:       "StaffWrongPassword",
			identifier: "EH001",
			password:   "salah",
			setupMock: func(_ *auth.MockRepository, finder *auth.MockStaffFinder) {
				finder.EXPECT().GetByCode(gomock.Any(), "EH001").Return(aiman, nil)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:       "Empty",
			identifier: " ",
			password:   "",
			wantErr:    auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessions := auth.NewMockRepository(ctrl)
			finder := auth.NewMockStaffFinder(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(sessions, finder)
			}

			svc := auth.NewService(sessions, finder, auth.NewTokenManager("secret", time.Hour), admin)

			token, sess, err := svc.Login(context.Background(), tt.identifier, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, tt.wantKind, sess.Kind)

			if tt.wantKind == auth.KindStaff {
				assert.Equal(t, aiman.ID, sess.StaffID)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := auth.NewMockRepository(ctrl)
	tokens := auth.NewTokenManager("secret", time.Hour)
	svc := auth.NewService(sessions, auth.NewMockStaffFinder(ctrl), tokens, admin)

	staffToken, _, err := tokens.GenerateToken("staff-sess", auth.KindStaff, time.Now())
	require.NoError(t, err)

	goneToken, _, err := tokens.GenerateToken("gone", auth.KindAdmin, time.Now())
	require.NoError(t, err)

	sessions.EXPECT().GetSession(gomock.Any(), "staff-sess").
		Return(&auth.Session{ID: "staff-sess", Kind: auth.KindStaff}, nil).AnyTimes()
	sessions.EXPECT().GetSession(gomock.Any(), "gone").Return(nil, auth.ErrSessionNotFound)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, found := auth.FromContext(r.Context())
		assert.True(t, found)
		assert.Equal(t, "staff-sess", sess.ID)
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name    string
		token   string
		handler http.Handler
		want    int
	}{
		{"NoToken", "", svc.Middleware(ok), http.StatusUnauthorized},
		{"ExpiredSession", goneToken, svc.Middleware(ok), http.StatusUnauthorized},
		{"StaffOnStaffRoute", staffToken, svc.Middleware(auth.RequireStaff(ok)), http.StatusNoContent},
		{"StaffOnAdminRoute", staffToken, svc.Middleware(auth.RequireAdmin(ok)), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
