package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/database"
	"github.com/ehfoto/backoffice/internal/invoice"
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

// SelectInvoices reads invoices with both assignee names resolved. The
// payroll store reuses it with a row-locking suffix.
const SelectInvoices = `
	SELECT inv.id, inv.number, inv.customer_no, inv.client, inv.detail, inv.date, inv.items,
	       inv.total, inv.deposit, inv.status,
	       inv.photographer_id, COALESCE(ps.name, ''), inv.photo_status, inv.photo_paid,
	       inv.editor_id, COALESCE(es.name, ''), inv.edit_status, inv.edit_paid,
	       inv.created_at, inv.updated_at
	FROM invoices inv
	LEFT JOIN staff ps ON ps.id = inv.photographer_id
	LEFT JOIN staff es ON es.id = inv.editor_id
`

// Scan reads a row in SelectInvoices order.
func Scan(s scanner) (*invoice.Invoice, error) {
	var (
		inv                     invoice.Invoice
		items                   []byte
		status                  string
		photoStatus, editStatus string
	)

	if err := s.Scan(
		&inv.ID, &inv.Number, &inv.CustomerNo, &inv.Client, &inv.Detail, &inv.Date, &items,
		&inv.Total, &inv.Deposit, &status,
		&inv.Photo.AssigneeID, &inv.Photo.AssigneeName, &photoStatus, &inv.Photo.Paid,
		&inv.Edit.AssigneeID, &inv.Edit.AssigneeName, &editStatus, &inv.Edit.Paid,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &inv.Items); err != nil {
		return nil, fmt.Errorf("decoding invoice items: %w", err)
	}

	inv.Status = invoice.Status(status)
	inv.Photo.Status = invoice.JobStatus(photoStatus)
	inv.Edit.Status = invoice.JobStatus(editStatus)

	return &inv, nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	inv, err := Scan(s.db.QueryRowContext(ctx, SelectInvoices+` WHERE inv.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := SelectInvoices + ` WHERE TRUE`

	var args []any

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND inv.status = $%d", len(args))
	}

	if filter.AssigneeID != nil {
		args = append(args, *filter.AssigneeID)
		query += fmt.Sprintf(" AND (inv.photographer_id = $%d OR inv.editor_id = $%d)", len(args), len(args))
	}

	query += " ORDER BY inv.date DESC, inv.number DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	return invoices, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return invoice.ErrNotFound
	}

	return nil
}

func (s *Store) MarkPaid(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE invoices SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		invoice.StatusPaid, id, invoice.StatusUnpaid,
	)
	if err != nil {
		return fmt.Errorf("marking invoice paid: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return invoice.ErrAlreadyPaid
	}

	return nil
}

// UpdateSlot writes one role's assignee and status. A slot that was paid
// out in the meantime is left untouched and reported as ErrJobPaid.
func (s *Store) UpdateSlot(ctx context.Context, id uuid.UUID, role invoice.Role, slot invoice.Slot) error {
	var query string

	switch role {
	case invoice.RolePhotographer:
		query = `UPDATE invoices SET photographer_id = $1, photo_status = $2, updated_at = NOW()
			WHERE id = $3 AND photo_paid = FALSE`
	case invoice.RoleEditor:
		query = `UPDATE invoices SET editor_id = $1, edit_status = $2, updated_at = NOW()
			WHERE id = $3 AND edit_paid = FALSE`
	default:
		return fmt.Errorf("%w: unknown role %q", invoice.ErrInvalid, role)
	}

	res, err := s.db.ExecContext(ctx, query, slot.AssigneeID, slot.Status, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: unknown staff", invoice.ErrInvalid)
		}

		return fmt.Errorf("updating %s slot: %w", role, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return invoice.ErrJobPaid
	}

	return nil
}

func numberingLockKey(prefix string) int64 {
	h := fnv.New64a()
	h.Write([]byte("invoice-number"))
	h.Write([]byte{0})
	h.Write([]byte(prefix))

	return int64(h.Sum64())
}

type createTx struct {
	tx *sql.Tx
}

func (s *Store) BeginCreate(ctx context.Context, prefix string) (invoice.CreateTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning invoice tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", numberingLockKey(prefix)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring numbering lock: %w", err)
	}

	return &createTx{tx: dbTx}, nil
}

func (c *createTx) Commit() error   { return c.tx.Commit() }
func (c *createTx) Rollback() error { return c.tx.Rollback() }

func (c *createTx) ListNumbers(ctx context.Context, prefix string) ([]string, error) {
	rows, err := c.tx.QueryContext(ctx, `SELECT number FROM invoices WHERE number LIKE $1`, prefix+"-%")
	if err != nil {
		return nil, fmt.Errorf("listing invoice numbers: %w", err)
	}
	defer rows.Close()

	var numbers []string

	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scanning invoice number: %w", err)
		}

		numbers = append(numbers, n)
	}

	return numbers, rows.Err()
}

func (c *createTx) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("encoding invoice items: %w", err)
	}

	query := `
		INSERT INTO invoices (number, customer_no, client, detail, date, items, total, deposit, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err = c.tx.QueryRowContext(ctx, query,
		inv.Number,
		inv.CustomerNo,
		inv.Client,
		inv.Detail,
		inv.Date,
		string(items),
		inv.Total,
		inv.Deposit,
		inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: number %s already exists", invoice.ErrInvalid, inv.Number)
		}

		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}
