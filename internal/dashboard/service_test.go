package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ehfoto/backoffice/internal/claim"
	"github.com/ehfoto/backoffice/internal/dashboard"
	"github.com/ehfoto/backoffice/internal/inventory"
	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/loan"
	"github.com/ehfoto/backoffice/internal/staff"
)

func TestService_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staffL := dashboard.NewMockStaffLister(ctrl)
	invoices := dashboard.NewMockInvoiceLister(ctrl)
	items := dashboard.NewMockInventoryLister(ctrl)
	loans := dashboard.NewMockLoanLister(ctrl)
	claims := dashboard.NewMockClaimLister(ctrl)

	borrowed := loan.StatusBorrowed
	pending := claim.StatusPending

	staffL.EXPECT().List(gomock.Any()).Return([]*staff.Staff{{}, {}, {}}, nil)
	invoices.EXPECT().List(gomock.Any(), invoice.ListFilter{}).Return([]*invoice.Invoice{
		{Status: invoice.StatusPaid}, {Status: invoice.StatusUnpaid}, {Status: invoice.StatusUnpaid},
	}, nil)
	items.EXPECT().List(gomock.Any(), inventory.ListFilter{}).Return([]*inventory.Item{{}, {}}, nil)
	loans.EXPECT().List(gomock.Any(), loan.ListFilter{Status: &borrowed}).Return([]*loan.Loan{
		{Overdue: true}, {Overdue: false},
	}, nil)
	claims.EXPECT().List(gomock.Any(), claim.ListFilter{Status: &pending}).Return([]*claim.Claim{{}}, nil)

	got, err := dashboard.NewService(staffL, invoices, items, loans, claims).Counts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dashboard.Counts{
		Staff:          3,
		Invoices:       3,
		InventoryItems: 2,
		ActiveLoans:    2,
		UnpaidInvoices: 2,
		OverdueLoans:   1,
		PendingClaims:  1,
	}, got)
}

func TestService_Counts_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staffL := dashboard.NewMockStaffLister(ctrl)
	staffL.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := dashboard.NewService(staffL, nil, nil, nil, nil).Counts(context.Background())
	assert.Error(t, err)
}
