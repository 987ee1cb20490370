package payroll_test

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
	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/payroll"
	"github.com/ehfoto/backoffice/internal/staff"
	"github.com/ehfoto/backoffice/internal/transaction"
)

var payday = time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)

type mocks struct {
	repo     *payroll.MockRepository
	tx       *payroll.MockPayTx
	staff    *payroll.MockStaffGetter
	invoices *payroll.MockInvoiceLister
}

func newService(t *testing.T) (*payroll.Service, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		repo:     payroll.NewMockRepository(ctrl),
		tx:       payroll.NewMockPayTx(ctrl),
		staff:    payroll.NewMockStaffGetter(ctrl),
		invoices: payroll.NewMockInvoiceLister(ctrl),
	}

	return payroll.NewService(m.repo, m.staff, m.invoices, calendar.Fixed(payday)), m
}

func finished(id uuid.UUID, number string, photo, edit *uuid.UUID) *invoice.Invoice {
	inv := &invoice.Invoice{ID: id, Number: number, Client: "Encik Ali"}
	if photo != nil {
		inv.Photo = invoice.Slot{AssigneeID: photo, Status: invoice.JobDone}
	}

	if edit != nil {
		inv.Edit = invoice.Slot{AssigneeID: edit, Status: invoice.JobDone}
	}

	return inv
}

func TestService_AvailableJobs(t *testing.T) {
	svc, m := newService(t)

	me := uuid.New()
	other := uuid.New()

	paid := finished(uuid.New(), "INV-EHFA-0001", &me, nil)
	paid.Photo.Paid = true

	inProgress := finished(uuid.New(), "INV-EHFA-0002", &me, nil)
	inProgress.Photo.Status = invoice.JobInProgress

	both := finished(uuid.New(), "INV-EHFA-0003", &me, &me)
	split := finished(uuid.New(), "INV-EHFA-0004", &other, &me)

	m.invoices.EXPECT().
		List(gomock.Any(), invoice.ListFilter{AssigneeID: &me}).
		Return([]*invoice.Invoice{paid, inProgress, both, split}, nil)

	got, err := svc.AvailableJobs(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "INV-EHFA-0003", got[0].InvoiceNumber)
	assert.Equal(t, invoice.RolePhotographer, got[0].Role)
	assert.Equal(t, invoice.RoleEditor, got[1].Role)
	assert.Equal(t, "INV-EHFA-0004", got[2].InvoiceNumber)
	assert.Equal(t, invoice.RoleEditor, got[2].Role)
}

func TestService_Pay(t *testing.T) {
	svc, m := newService(t)

	st := &staff.Staff{ID: uuid.New(), Name: "Aiman"}
	inv1 := finished(uuid.New(), "INV-EHFA-0007", &st.ID, &st.ID)
	inv2 := finished(uuid.New(), "INV-EHFA-0008", &st.ID, nil)

	m.staff.EXPECT().Get(gomock.Any(), st.ID).Return(st, nil)
	m.repo.EXPECT().BeginPay(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().LockInvoice(gomock.Any(), inv1.ID).Return(inv1, nil).Times(2)
	m.tx.EXPECT().LockInvoice(gomock.Any(), inv2.ID).Return(inv2, nil)

	payrollID := uuid.New()

	m.tx.EXPECT().
		CreatePayroll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *payroll.Payroll) error {
			assert.Equal(t, "Aiman", p.StaffName)
			assert.Equal(t, payday, p.Date)
			assert.Len(t, p.Jobs, 3)
			p.ID = payrollID
			return nil
		})
	m.tx.EXPECT().MarkJobPaid(gomock.Any(), inv1.ID, invoice.RolePhotographer).Return(nil)
	m.tx.EXPECT().MarkJobPaid(gomock.Any(), inv1.ID, invoice.RoleEditor).Return(nil)
	m.tx.EXPECT().MarkJobPaid(gomock.Any(), inv2.ID, invoice.RolePhotographer).Return(nil)
	m.tx.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, transaction.TypeExpense, tx.Type)
			assert.Equal(t, transaction.SourcePayroll, tx.Source)
			assert.Equal(t, "Gaji Staff (Per-Job): Aiman", tx.Description)
			assert.Equal(t, int64(45000), tx.Amount)
			require.NotNil(t, tx.ReferenceID)
			assert.Equal(t, payrollID, *tx.ReferenceID)
			return nil
		})
	m.tx.EXPECT().Commit().Return(nil)
	m.tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Pay(context.Background(), st.ID, []payroll.JobParams{
		{InvoiceID: inv1.ID, Role: invoice.RolePhotographer, Amount: 20000},
		{InvoiceID: inv1.ID, Role: invoice.RoleEditor, Amount: 10000},
		{InvoiceID: inv2.ID, Role: invoice.RolePhotographer, Amount: 15000},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(45000), got.Amount)
	assert.Equal(t, "Fotografi: Encik Ali (INV-EHFA-0007)", got.Jobs[0].Description)
}

func TestService_Pay_Validation(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		jobs    []payroll.JobParams
		wantErr error
	}{
		{"NoJobs", nil, payroll.ErrInvalid},
		{"NegativeAmount", []payroll.JobParams{{InvoiceID: id, Role: invoice.RoleEditor, Amount: -1}}, payroll.ErrInvalid},
		{"UnknownRole", []payroll.JobParams{{InvoiceID: id, Role: "driver", Amount: 1}}, payroll.ErrInvalid},
		{"Duplicate", []payroll.JobParams{
			{InvoiceID: id, Role: invoice.RoleEditor, Amount: 1},
			{InvoiceID: id, Role: invoice.RoleEditor, Amount: 2},
		}, payroll.ErrDuplicateJob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.Pay(context.Background(), uuid.New(), tt.jobs)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Pay_IneligibleRollsBack(t *testing.T) {
	svc, m := newService(t)

	st := &staff.Staff{ID: uuid.New(), Name: "Aiman"}
	alreadyPaid := finished(uuid.New(), "INV-EHFA-0009", &st.ID, nil)
	alreadyPaid.Photo.Paid = true

	m.staff.EXPECT().Get(gomock.Any(), st.ID).Return(st, nil)
	m.repo.EXPECT().BeginPay(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().LockInvoice(gomock.Any(), alreadyPaid.ID).Return(alreadyPaid, nil)
	m.tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Pay(context.Background(), st.ID, []payroll.JobParams{
		{InvoiceID: alreadyPaid.ID, Role: invoice.RolePhotographer, Amount: 100},
	})
	assert.ErrorIs(t, err, payroll.ErrJobNotEligible)
}

func TestService_Pay_LedgerFailureRollsBack(t *testing.T) {
	svc, m := newService(t)

	st := &staff.Staff{ID: uuid.New(), Name: "Aiman"}
	inv := finished(uuid.New(), "INV-EHFA-0010", nil, &st.ID)

	m.staff.EXPECT().Get(gomock.Any(), st.ID).Return(st, nil)
	m.repo.EXPECT().BeginPay(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().LockInvoice(gomock.Any(), inv.ID).Return(inv, nil)
	m.tx.EXPECT().CreatePayroll(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().MarkJobPaid(gomock.Any(), inv.ID, invoice.RoleEditor).Return(nil)
	m.tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(errors.New("ledger down"))
	m.tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Pay(context.Background(), st.ID, []payroll.JobParams{
		{InvoiceID: inv.ID, Role: invoice.RoleEditor, Amount: 5000},
	})
	assert.Error(t, err)
}

func TestService_Delete(t *testing.T) {
	svc, m := newService(t)
	id := uuid.New()

	m.repo.EXPECT().DeletePayroll(gomock.Any(), id).Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), id))

	m.repo.EXPECT().DeletePayroll(gomock.Any(), id).Return(payroll.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), id), payroll.ErrNotFound)
}
