// Package finance derives the monthly income and expense view from the
// ledger, paid invoices and payroll records. Nothing here is stored.
package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/payroll"
	"github.com/ehfoto/backoffice/internal/transaction"
)

var monthLabels = [...]string{"Jan", "Feb", "Mac", "Apr", "Mei", "Jun", "Jul", "Ogo", "Sep", "Okt", "Nov", "Dis"}

// Month is one calendar month of activity. Key is YYYY-MM.
type Month struct {
	Key     string
	Label   string
	Income  int64
	Expense int64
}

func (m Month) Net() int64 {
	return m.Income - m.Expense
}

type Report struct {
	Months       []Month
	TotalIncome  int64
	TotalExpense int64
}

func (r Report) Net() int64 {
	return r.TotalIncome - r.TotalExpense
}

func monthKey(d time.Time) string {
	return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
}

func monthLabel(d time.Time) string {
	return fmt.Sprintf("%s %d", monthLabels[d.Month()-1], d.Year())
}

type aggregator struct {
	months map[string]*Month
	report Report
}

func (a *aggregator) add(date time.Time, income, expense int64) {
	a.report.TotalIncome += income
	a.report.TotalExpense += expense

	// Undated records count toward the totals only.
	if date.IsZero() {
		return
	}

	key := monthKey(date)

	m, ok := a.months[key]
	if !ok {
		m = &Month{Key: key, Label: monthLabel(date)}
		a.months[key] = m
	}

	m.Income += income
	m.Expense += expense
}

// Summarize buckets every source by month. Income is ledger income plus
// paid invoices (by invoice date). Expense is ledger expense plus payroll
// records (by payment date). A ledger entry written by payroll is skipped
// only while its payroll record exists; once the record is deleted the
// ledger entry counts as a normal expense. With nothing to show, the report
// holds a single empty bucket for the month of now.
func Summarize(txs []*transaction.Transaction, invoices []*invoice.Invoice, payrolls []*payroll.Payroll, now time.Time) Report {
	a := &aggregator{months: make(map[string]*Month)}

	recorded := make(map[uuid.UUID]bool, len(payrolls))
	for _, p := range payrolls {
		recorded[p.ID] = true
	}

	for _, tx := range txs {
		switch {
		case tx.Source == transaction.SourcePayroll && tx.ReferenceID != nil && recorded[*tx.ReferenceID]:
			continue
		case tx.Type == transaction.TypeIncome:
			a.add(tx.Date, tx.Amount, 0)
		case tx.Type == transaction.TypeExpense:
			a.add(tx.Date, 0, tx.Amount)
		}
	}

	for _, inv := range invoices {
		if inv.IsPaid() {
			a.add(inv.Date, inv.Total, 0)
		}
	}

	for _, p := range payrolls {
		a.add(p.Date, 0, p.Amount)
	}

	if len(a.months) == 0 {
		a.report.Months = []Month{{Key: monthKey(now), Label: monthLabel(now)}}
		return a.report
	}

	a.report.Months = make([]Month, 0, len(a.months))
	for _, m := range a.months {
		a.report.Months = append(a.report.Months, *m)
	}

	sort.Slice(a.report.Months, func(i, j int) bool {
		return a.report.Months[i].Key < a.report.Months[j].Key
	})

	return a.report
}
