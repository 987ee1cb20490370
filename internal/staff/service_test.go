package staff_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ehfoto/backoffice/internal/staff"
)

func TestService_Create(t *testing.T) {
	hired := time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)

	valid := staff.CreateParams{
		Code:     " EH001 ",
		Name:     "Aiman",
		Password: "rahsia",
		Position: staff.PositionPhotographer,
		HireDate: hired,
	}

	tests := []struct {
		name      string
		params    func() staff.CreateParams
		setupMock func(m *staff.MockRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			params: func() staff.CreateParams { return valid },
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().GetStaffByCode(gomock.Any(), "EH001").Return(nil, staff.ErrNotFound)
				m.EXPECT().
					CreateStaff(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *staff.Staff) error {
						assert.Equal(t, "EH001", s.Code)
						assert.NotEqual(t, "rahsia", s.PasswordHash)
						s.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:   "DuplicateCode",
			params: func() staff.CreateParams { return valid },
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().GetStaffByCode(gomock.Any(), "EH001").Return(&staff.Staff{Code: "eh001"}, nil)
			},
			wantErr: staff.ErrDuplicateCode,
		},
		{
			name: "PasswordTooShort",
			params: func() staff.CreateParams {
				p := valid
				p.Password = "abc"
				return p
			},
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().GetStaffByCode(gomock.Any(), "EH001").Return(nil, staff.ErrNotFound)
			},
			wantErr: staff.ErrPasswordTooShort,
		},
		{
			name: "PasswordTooLong",
			params: func() staff.CreateParams {
				p := valid
				p.Password = strings.Repeat("x", staff.MaxPasswordLength+1)
				return p
			},
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().GetStaffByCode(gomock.Any(), "EH001").Return(nil, staff.ErrNotFound)
			},
			wantErr: staff.ErrInvalid,
		},
		{
			name: "MissingName",
			params: func() staff.CreateParams {
				p := valid
				p.Name = "  "
				return p
			},
			wantErr: staff.ErrInvalid,
		},
		{
			name: "MissingHireDate",
			params: func() staff.CreateParams {
				p := valid
				p.HireDate = time.Time{}
				return p
			},
			wantErr: staff.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := staff.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := staff.NewService(repo, bcrypt.MinCost)
			got, err := svc.Create(context.Background(), tt.params())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.CheckPassword("rahsia"))
			assert.False(t, got.CheckPassword("salah"))
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := staff.NewMockRepository(ctrl)
	svc := staff.NewService(repo, bcrypt.MinCost)
	id := uuid.New()

	err := svc.ChangePassword(context.Background(), id, "123")
	assert.ErrorIs(t, err, staff.ErrPasswordTooShort)

	err = svc.ChangePassword(context.Background(), id, strings.Repeat("a", staff.MaxPasswordLength+1))
	assert.ErrorIs(t, err, staff.ErrInvalid)

	var stored string

	repo.EXPECT().
		UpdatePassword(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			stored = hash
			return nil
		})

	require.NoError(t, svc.ChangePassword(context.Background(), id, "1234"))

	s := &staff.Staff{PasswordHash: stored}
	assert.True(t, s.CheckPassword("1234"))
}

func TestService_Delete_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := staff.NewMockRepository(ctrl)
	svc := staff.NewService(repo, bcrypt.MinCost)
	id := uuid.New()

	repo.EXPECT().DeleteStaff(gomock.Any(), id).Return(staff.ErrInUse)

	err := svc.Delete(context.Background(), id)
	assert.True(t, errors.Is(err, staff.ErrInUse))
}

func TestStaff_Eligibility(t *testing.T) {
	tests := []struct {
		position  string
		wantShoot bool
		wantEdit  bool
	}{
		{staff.PositionPhotographer, true, false},
		{staff.PositionVideographer, true, false},
		{staff.PositionEditor, false, true},
		{staff.PositionAdmin, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			s := &staff.Staff{Position: tt.position}
			assert.Equal(t, tt.wantShoot, s.CanShoot())
			assert.Equal(t, tt.wantEdit, s.CanEdit())
		})
	}
}
