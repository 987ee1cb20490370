package loan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ehfoto/backoffice/internal/calendar"
	"github.com/ehfoto/backoffice/internal/inventory"
	"github.com/ehfoto/backoffice/internal/loan"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoan_IsOverdue(t *testing.T) {
	today := day(2024, 6, 10)

	tests := []struct {
		name   string
		loan   loan.Loan
		expect bool
	}{
		{"BorrowedPastDue", loan.Loan{Status: loan.StatusBorrowed, ReturnDate: day(2024, 6, 9)}, true},
		{"BorrowedDueToday", loan.Loan{Status: loan.StatusBorrowed, ReturnDate: today}, false},
		{"BorrowedFuture", loan.Loan{Status: loan.StatusBorrowed, ReturnDate: day(2024, 6, 11)}, false},
		{"ReturnedPastDue", loan.Loan{Status: loan.StatusReturned, ReturnDate: day(2024, 6, 1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.loan.IsOverdue(today))
		})
	}
}

func TestService_Create(t *testing.T) {
	staffID := uuid.New()
	itemID := uuid.New()

	base := loan.CreateParams{
		StaffID:    staffID,
		ItemID:     itemID,
		LoanDate:   day(2024, 6, 1),
		ReturnDate: day(2024, 6, 5),
		Purpose:    "Majlis kahwin",
	}

	tests := []struct {
		name       string
		params     func() loan.CreateParams
		setupMocks func(repo *loan.MockRepository, items *loan.MockItemGetter)
		wantErr    error
	}{
		{
			name:   "Success",
			params: func() loan.CreateParams { return base },
			setupMocks: func(repo *loan.MockRepository, items *loan.MockItemGetter) {
				items.EXPECT().Get(gomock.Any(), itemID).Return(&inventory.Item{ID: itemID, Name: "Canon R6", Quantity: 1}, nil)
				repo.EXPECT().
					CreateLoan(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *loan.Loan) error {
						assert.Equal(t, loan.StatusBorrowed, l.Status)
						l.ID = uuid.New()
						l.StaffName = "Aiman"
						return nil
					})
			},
		},
		{
			name: "ReturnBeforeLoan",
			params: func() loan.CreateParams {
				p := base
				p.ReturnDate = day(2024, 5, 31)
				return p
			},
			wantErr: loan.ErrInvalid,
		},
		{
			name:   "OutOfStock",
			params: func() loan.CreateParams { return base },
			setupMocks: func(_ *loan.MockRepository, items *loan.MockItemGetter) {
				items.EXPECT().Get(gomock.Any(), itemID).Return(&inventory.Item{ID: itemID, Quantity: 0}, nil)
			},
			wantErr: loan.ErrItemUnavailable,
		},
		{
			name:   "UnknownItem",
			params: func() loan.CreateParams { return base },
			setupMocks: func(_ *loan.MockRepository, items *loan.MockItemGetter) {
				items.EXPECT().Get(gomock.Any(), itemID).Return(nil, inventory.ErrNotFound)
			},
			wantErr: loan.ErrItemUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := loan.NewMockRepository(ctrl)
			items := loan.NewMockItemGetter(ctrl)

			if tt.setupMocks != nil {
				tt.setupMocks(repo, items)
			}

			svc := loan.NewService(repo, items, calendar.Fixed(day(2024, 6, 3)))
			got, err := svc.Create(context.Background(), tt.params())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Canon R6", got.ItemName)
			assert.False(t, got.Overdue)
		})
	}
}

func TestService_Return(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := loan.NewMockRepository(ctrl)
	svc := loan.NewService(repo, loan.NewMockItemGetter(ctrl), calendar.Fixed(day(2024, 6, 10)))

	id := uuid.New()

	repo.EXPECT().GetLoan(gomock.Any(), id).Return(&loan.Loan{ID: id, Status: loan.StatusBorrowed, ReturnDate: day(2024, 6, 1)}, nil)
	repo.EXPECT().MarkReturned(gomock.Any(), id).Return(nil)

	got, err := svc.Return(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, loan.StatusReturned, got.Status)
	assert.False(t, got.Overdue)

	repo.EXPECT().GetLoan(gomock.Any(), id).Return(&loan.Loan{ID: id, Status: loan.StatusReturned}, nil)

	_, err = svc.Return(context.Background(), id)
	assert.True(t, errors.Is(err, loan.ErrAlreadyReturned))
}

func TestService_OverdueCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := loan.NewMockRepository(ctrl)
	svc := loan.NewService(repo, loan.NewMockItemGetter(ctrl), calendar.Fixed(day(2024, 6, 10)))

	status := loan.StatusBorrowed

	repo.EXPECT().ListLoans(gomock.Any(), loan.ListFilter{Status: &status}).Return([]*loan.Loan{
		{Status: loan.StatusBorrowed, ReturnDate: day(2024, 6, 9)},
		{Status: loan.StatusBorrowed, ReturnDate: day(2024, 6, 10)},
		{Status: loan.StatusBorrowed, ReturnDate: day(2024, 5, 1)},
	}, nil)

	n, err := svc.OverdueCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
