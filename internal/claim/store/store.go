package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/claim"
	"github.com/ehfoto/backoffice/internal/database"
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

const selectClaims = `
	SELECT c.id, c.staff_id, s.name, c.type, c.description, c.amount, c.date, c.receipt,
	       c.status, c.response, c.processed_date, c.created_at
	FROM claims c
	JOIN staff s ON s.id = c.staff_id
`

func scanClaim(s scanner) (*claim.Claim, error) {
	var (
		c      claim.Claim
		status string
	)

	if err := s.Scan(
		&c.ID, &c.StaffID, &c.StaffName, &c.Type, &c.Description, &c.Amount, &c.Date, &c.Receipt,
		&status, &c.Response, &c.ProcessedDate, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = claim.Status(status)

	return &c, nil
}

func (s *Store) CreateClaim(ctx context.Context, c *claim.Claim) error {
	query := `
		WITH ins AS (
			INSERT INTO claims (staff_id, type, description, amount, date, receipt, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			RETURNING id, staff_id, created_at
		)
		SELECT ins.id, ins.created_at, s.name FROM ins JOIN staff s ON s.id = ins.staff_id
	`

	err := s.db.QueryRowContext(ctx, query,
		c.StaffID,
		c.Type,
		c.Description,
		c.Amount,
		c.Date,
		c.Receipt,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.StaffName)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: unknown staff", claim.ErrInvalid)
		}

		return fmt.Errorf("creating claim: %w", err)
	}

	return nil
}

func (s *Store) GetClaim(ctx context.Context, id uuid.UUID) (*claim.Claim, error) {
	c, err := scanClaim(s.db.QueryRowContext(ctx, selectClaims+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, claim.ErrNotFound
		}

		return nil, fmt.Errorf("getting claim: %w", err)
	}

	return c, nil
}

func (s *Store) ListClaims(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, error) {
	query := selectClaims + ` WHERE TRUE`

	var args []any

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND c.status = $%d", len(args))
	}

	if filter.StaffID != nil {
		args = append(args, *filter.StaffID)
		query += fmt.Sprintf(" AND c.staff_id = $%d", len(args))
	}

	query += " ORDER BY c.date DESC, c.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	defer rows.Close()

	var claims []*claim.Claim

	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}

		claims = append(claims, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating claims: %w", err)
	}

	return claims, nil
}

// process moves a pending claim to status. A claim that is no longer
// pending is reported as ErrAlreadyProcessed.
func process(ctx context.Context, ex execer, id uuid.UUID, status claim.Status, response string, processed time.Time) error {
	res, err := ex.ExecContext(ctx, `
		UPDATE claims SET status = $1, response = $2, processed_date = $3
		WHERE id = $4 AND status = $5`,
		status, response, processed, id, claim.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("updating claim: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return claim.ErrAlreadyProcessed
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) Reject(ctx context.Context, id uuid.UUID, reason string, processed time.Time) error {
	return process(ctx, s.db, id, claim.StatusRejected, reason, processed)
}

type approveTx struct {
	tx *sql.Tx
}

func (s *Store) BeginApprove(ctx context.Context) (claim.ApproveTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning approval tx: %w", err)
	}

	return &approveTx{tx: dbTx}, nil
}

func (a *approveTx) Commit() error   { return a.tx.Commit() }
func (a *approveTx) Rollback() error { return a.tx.Rollback() }

func (a *approveTx) Approve(ctx context.Context, id uuid.UUID, note string, processed time.Time) error {
	return process(ctx, a.tx, id, claim.StatusApproved, note, processed)
}

func (a *approveTx) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return txstore.Insert(ctx, a.tx, tx)
}
