package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/auth"
	"github.com/ehfoto/backoffice/internal/backup"
	"github.com/ehfoto/backoffice/internal/dashboard"
	"github.com/ehfoto/backoffice/internal/finance"
	"github.com/ehfoto/backoffice/internal/settings"
)

type LoginRequest struct {
	Identifier string `json:"staff_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type SessionResponse struct {
	Type      auth.Kind  `json:"type"`
	StaffID   *uuid.UUID `json:"id,omitempty"`
	StaffCode string     `json:"staff_id,omitempty"`
	Name      string     `json:"name,omitempty"`
	Position  string     `json:"position,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
}

func ToSessionResponse(s *auth.Session) SessionResponse {
	resp := SessionResponse{
		Type:      s.Kind,
		StaffCode: s.StaffCode,
		Name:      s.StaffName,
		Position:  s.Position,
		ExpiresAt: s.ExpiresAt,
	}

	if !s.IsAdmin() {
		id := s.StaffID
		resp.StaffID = &id
	}

	return resp
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

type SettingsRequest struct {
	WebhookURL string `json:"webhook_url"`
	AutoSync   bool   `json:"auto_sync"`
}

type SettingsResponse struct {
	WebhookURL   string `json:"webhook_url"`
	LastSyncDate string `json:"last_sync_date"`
	AutoSync     bool   `json:"auto_sync"`
}

func ToSettingsResponse(c *settings.Config) SettingsResponse {
	return SettingsResponse{
		WebhookURL:   c.WebhookURL,
		LastSyncDate: c.LastSyncDate,
		AutoSync:     c.AutoSync,
	}
}

type MonthResponse struct {
	Month   string `json:"month"`
	Label   string `json:"label"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
}

type FinanceReportResponse struct {
	Months       []MonthResponse `json:"months"`
	TotalIncome  int64           `json:"total_income"`
	TotalExpense int64           `json:"total_expense"`
	Net          int64           `json:"net"`
}

func ToFinanceReportResponse(r finance.Report) FinanceReportResponse {
	return FinanceReportResponse{
		Months: Map(r.Months, func(m finance.Month) MonthResponse {
			return MonthResponse{Month: m.Key, Label: m.Label, Income: m.Income, Expense: m.Expense, Net: m.Net()}
		}),
		TotalIncome:  r.TotalIncome,
		TotalExpense: r.TotalExpense,
		Net:          r.Net(),
	}
}

type CountsResponse struct {
	Staff          int `json:"staff"`
	Invoices       int `json:"invoices"`
	InventoryItems int `json:"inventory_items"`
	ActiveLoans    int `json:"active_loans"`
	UnpaidInvoices int `json:"unpaid_invoices"`
	OverdueLoans   int `json:"overdue_loans"`
	PendingClaims  int `json:"pending_claims"`
}

func ToCountsResponse(c dashboard.Counts) CountsResponse {
	return CountsResponse(c)
}

// BackupResponse is the downloadable snapshot. Staff entries omit password
// hashes.
type BackupResponse struct {
	ExportedAt   time.Time             `json:"exported_at"`
	Staff        []StaffResponse       `json:"staff"`
	Inventory    []ItemResponse        `json:"inventory"`
	Loans        []LoanResponse        `json:"loans"`
	Invoices     []InvoiceResponse     `json:"invoices"`
	Claims       []ClaimResponse       `json:"claims"`
	Transactions []TransactionResponse `json:"transactions"`
	Payrolls     []PayrollResponse     `json:"payrolls"`
}

func ToBackupResponse(b *backup.Bundle) BackupResponse {
	return BackupResponse{
		ExportedAt:   b.ExportedAt,
		Staff:        Map(b.Staff, ToStaffResponse),
		Inventory:    Map(b.Inventory, ToItemResponse),
		Loans:        Map(b.Loans, ToLoanResponse),
		Invoices:     Map(b.Invoices, ToInvoiceResponse),
		Claims:       Map(b.Claims, ToClaimResponse),
		Transactions: Map(b.Transactions, ToTransactionResponse),
		Payrolls:     Map(b.Payrolls, ToPayrollResponse),
	}
}
