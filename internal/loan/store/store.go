package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/database"
	"github.com/ehfoto/backoffice/internal/loan"
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

const selectLoans = `
	SELECT l.id, l.staff_id, s.name, l.item_id, i.name, l.loan_date, l.return_date,
	       l.status, l.purpose, l.created_at, l.updated_at
	FROM loans l
	JOIN staff s ON s.id = l.staff_id
	JOIN inventory_items i ON i.id = l.item_id
`

func scanLoan(s scanner) (*loan.Loan, error) {
	var (
		l      loan.Loan
		status string
	)

	if err := s.Scan(
		&l.ID, &l.StaffID, &l.StaffName, &l.ItemID, &l.ItemName, &l.LoanDate, &l.ReturnDate,
		&status, &l.Purpose, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.Status = loan.Status(status)

	return &l, nil
}

func (s *Store) CreateLoan(ctx context.Context, l *loan.Loan) error {
	query := `
		WITH ins AS (
			INSERT INTO loans (staff_id, item_id, loan_date, return_date, status, purpose, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			RETURNING id, staff_id, created_at
		)
		SELECT ins.id, ins.created_at, s.name FROM ins JOIN staff s ON s.id = ins.staff_id
	`

	err := s.db.QueryRowContext(ctx, query,
		l.StaffID,
		l.ItemID,
		l.LoanDate,
		l.ReturnDate,
		l.Status,
		l.Purpose,
	).Scan(&l.ID, &l.CreatedAt, &l.StaffName)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: unknown staff or item", loan.ErrInvalid)
		}

		return fmt.Errorf("creating loan: %w", err)
	}

	return nil
}

func (s *Store) GetLoan(ctx context.Context, id uuid.UUID) (*loan.Loan, error) {
	l, err := scanLoan(s.db.QueryRowContext(ctx, selectLoans+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, loan.ErrNotFound
		}

		return nil, fmt.Errorf("getting loan: %w", err)
	}

	return l, nil
}

func (s *Store) ListLoans(ctx context.Context, filter loan.ListFilter) ([]*loan.Loan, error) {
	query := selectLoans + ` WHERE TRUE`

	var args []any

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND l.status = $%d", len(args))
	}

	if filter.StaffID != nil {
		args = append(args, *filter.StaffID)
		query += fmt.Sprintf(" AND l.staff_id = $%d", len(args))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (s.name ILIKE $%d OR i.name ILIKE $%d)", len(args), len(args))
	}

	query += " ORDER BY l.loan_date DESC, l.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}
	defer rows.Close()

	var loans []*loan.Loan

	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning loan: %w", err)
		}

		loans = append(loans, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loans: %w", err)
	}

	return loans, nil
}

// MarkReturned flips a borrowed loan to returned. A loan that is not
// currently borrowed is reported as ErrAlreadyReturned.
func (s *Store) MarkReturned(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE loans SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		loan.StatusReturned, id, loan.StatusBorrowed,
	)
	if err != nil {
		return fmt.Errorf("returning loan: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return loan.ErrAlreadyReturned
	}

	return nil
}
