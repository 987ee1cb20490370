package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/invoice"
	invoicestore "github.com/ehfoto/backoffice/internal/invoice/store"
	"github.com/ehfoto/backoffice/internal/payroll"
	"github.com/ehfoto/backoffice/internal/transaction"
	txstore "github.com/ehfoto/backoffice/internal/transaction/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `id, staff_id, staff_name, amount, date, jobs, created_at`

func scanPayroll(s scanner) (*payroll.Payroll, error) {
	var (
		p    payroll.Payroll
		jobs []byte
	)

	if err := s.Scan(&p.ID, &p.StaffID, &p.StaffName, &p.Amount, &p.Date, &jobs, &p.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(jobs, &p.Jobs); err != nil {
		return nil, fmt.Errorf("decoding payroll jobs: %w", err)
	}

	return &p, nil
}

func (s *Store) GetPayroll(ctx context.Context, id uuid.UUID) (*payroll.Payroll, error) {
	query := `SELECT ` + selectColumns + ` FROM payrolls WHERE id = $1`

	p, err := scanPayroll(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payroll.ErrNotFound
		}

		return nil, fmt.Errorf("getting payroll: %w", err)
	}

	return p, nil
}

func (s *Store) ListPayrolls(ctx context.Context, filter payroll.ListFilter) ([]*payroll.Payroll, error) {
	query := `SELECT ` + selectColumns + ` FROM payrolls WHERE TRUE`

	var args []any

	if filter.StaffID != nil {
		args = append(args, *filter.StaffID)
		query += fmt.Sprintf(" AND staff_id = $%d", len(args))
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payrolls: %w", err)
	}
	defer rows.Close()

	var list []*payroll.Payroll

	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payroll: %w", err)
		}

		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payrolls: %w", err)
	}

	return list, nil
}

func (s *Store) DeletePayroll(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting payroll: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return payroll.ErrNotFound
	}

	return nil
}

type payTx struct {
	tx *sql.Tx
}

func (s *Store) BeginPay(ctx context.Context) (payroll.PayTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning payroll tx: %w", err)
	}

	return &payTx{tx: dbTx}, nil
}

func (p *payTx) Commit() error   { return p.tx.Commit() }
func (p *payTx) Rollback() error { return p.tx.Rollback() }

func (p *payTx) LockInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := invoicestore.SelectInvoices + ` WHERE inv.id = $1 FOR UPDATE OF inv`

	inv, err := invoicestore.Scan(p.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("locking invoice: %w", err)
	}

	return inv, nil
}

func (p *payTx) CreatePayroll(ctx context.Context, pr *payroll.Payroll) error {
	jobs, err := json.Marshal(pr.Jobs)
	if err != nil {
		return fmt.Errorf("encoding payroll jobs: %w", err)
	}

	query := `
		INSERT INTO payrolls (staff_id, staff_name, amount, date, jobs, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = p.tx.QueryRowContext(ctx, query,
		pr.StaffID,
		pr.StaffName,
		pr.Amount,
		pr.Date,
		string(jobs),
	).Scan(&pr.ID, &pr.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payroll: %w", err)
	}

	return nil
}

func (p *payTx) MarkJobPaid(ctx context.Context, invoiceID uuid.UUID, role invoice.Role) error {
	var query string

	switch role {
	case invoice.RolePhotographer:
		query = `UPDATE invoices SET photo_paid = TRUE, updated_at = NOW() WHERE id = $1 AND photo_paid = FALSE`
	case invoice.RoleEditor:
		query = `UPDATE invoices SET edit_paid = TRUE, updated_at = NOW() WHERE id = $1 AND edit_paid = FALSE`
	default:
		return fmt.Errorf("%w: unknown role %q", payroll.ErrInvalid, role)
	}

	res, err := p.tx.ExecContext(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("marking %s job paid: %w", role, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return payroll.ErrJobNotEligible
	}

	return nil
}

func (p *payTx) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return txstore.Insert(ctx, p.tx, tx)
}
