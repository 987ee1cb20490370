package backup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ehfoto/backoffice/internal/backup"
	"github.com/ehfoto/backoffice/internal/claim"
	"github.com/ehfoto/backoffice/internal/inventory"
	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/loan"
	"github.com/ehfoto/backoffice/internal/payroll"
	"github.com/ehfoto/backoffice/internal/staff"
	"github.com/ehfoto/backoffice/internal/transaction"
)

type mocks struct {
	staff        *backup.MockStaffLister
	inventory    *backup.MockInventoryLister
	loans        *backup.MockLoanLister
	invoices     *backup.MockInvoiceLister
	claims       *backup.MockClaimLister
	transactions *backup.MockTransactionLister
	payrolls     *backup.MockPayrollLister
}

func newMocks(ctrl *gomock.Controller) (mocks, backup.Sources) {
	m := mocks{
		staff:        backup.NewMockStaffLister(ctrl),
		inventory:    backup.NewMockInventoryLister(ctrl),
		loans:        backup.NewMockLoanLister(ctrl),
		invoices:     backup.NewMockInvoiceLister(ctrl),
		claims:       backup.NewMockClaimLister(ctrl),
		transactions: backup.NewMockTransactionLister(ctrl),
		payrolls:     backup.NewMockPayrollLister(ctrl),
	}

	return m, backup.Sources{
		Staff:        m.staff,
		Inventory:    m.inventory,
		Loans:        m.loans,
		Invoices:     m.invoices,
		Claims:       m.claims,
		Transactions: m.transactions,
		Payrolls:     m.payrolls,
	}
}

func TestService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, src := newMocks(ctrl)
	now := time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)

	m.staff.EXPECT().List(gomock.Any()).Return([]*staff.Staff{{Name: "Aiman"}}, nil)
	m.inventory.EXPECT().List(gomock.Any(), inventory.ListFilter{}).Return([]*inventory.Item{{}}, nil)
	m.loans.EXPECT().List(gomock.Any(), loan.ListFilter{}).Return([]*loan.Loan{{}, {}}, nil)
	m.invoices.EXPECT().List(gomock.Any(), invoice.ListFilter{}).Return(nil, nil)
	m.claims.EXPECT().List(gomock.Any(), claim.ListFilter{}).Return([]*claim.Claim{{}}, nil)
	m.transactions.EXPECT().List(gomock.Any(), transaction.ListFilter{}).Return([]*transaction.Transaction{{}}, nil)
	m.payrolls.EXPECT().List(gomock.Any(), payroll.ListFilter{}).Return([]*payroll.Payroll{{}}, nil)

	b, err := backup.NewService(src, func() time.Time { return now }).Export(context.Background())
	require.NoError(t, err)

	assert.Len(t, b.Staff, 1)
	assert.Len(t, b.Loans, 2)
	assert.Empty(t, b.Invoices)
	assert.Equal(t, now, b.ExportedAt)
	assert.Equal(t, "EHFOTO_BACKUP_2024-10-05.json", b.Filename())
}

func TestBundle_FilenameUsesStudioDay(t *testing.T) {
	// 20:00 UTC on the 5th is already the 6th in UTC+8.
	instant := time.Date(2024, 10, 5, 20, 0, 0, 0, time.UTC)

	local := &backup.Bundle{ExportedAt: instant.In(time.FixedZone("MYT", 8*60*60))}
	assert.Equal(t, "EHFOTO_BACKUP_2024-10-06.json", local.Filename())

	utc := &backup.Bundle{ExportedAt: instant}
	assert.Equal(t, "EHFOTO_BACKUP_2024-10-05.json", utc.Filename())
}

func TestService_Export_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, src := newMocks(ctrl)

	m.staff.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.inventory.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := backup.NewService(src, time.Now).Export(context.Background())
	assert.ErrorContains(t, err, "listing inventory")
}
