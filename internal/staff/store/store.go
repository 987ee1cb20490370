package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/database"
	"github.com/ehfoto/backoffice/internal/staff"
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

const selectColumns = `id, code, name, password_hash, position, phone, hire_date, created_at, updated_at`

func scanStaff(s scanner) (*staff.Staff, error) {
	var st staff.Staff

	if err := s.Scan(
		&st.ID, &st.Code, &st.Name, &st.PasswordHash, &st.Position, &st.Phone, &st.HireDate, &st.CreatedAt, &st.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &st, nil
}

func (s *Store) CreateStaff(ctx context.Context, st *staff.Staff) error {
	query := `
		INSERT INTO staff (code, name, password_hash, position, phone, hire_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		st.Code,
		st.Name,
		st.PasswordHash,
		st.Position,
		st.Phone,
		st.HireDate,
	).Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return staff.ErrDuplicateCode
		}

		return fmt.Errorf("creating staff: %w", err)
	}

	return nil
}

func (s *Store) GetStaff(ctx context.Context, id uuid.UUID) (*staff.Staff, error) {
	query := `SELECT ` + selectColumns + ` FROM staff WHERE id = $1`

	st, err := scanStaff(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, staff.ErrNotFound
		}

		return nil, fmt.Errorf("getting staff: %w", err)
	}

	return st, nil
}

func (s *Store) GetStaffByCode(ctx context.Context, code string) (*staff.Staff, error) {
	query := `SELECT ` + selectColumns + ` FROM staff WHERE LOWER(code) = LOWER($1)`

	st, err := scanStaff(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, staff.ErrNotFound
		}

		return nil, fmt.Errorf("getting staff by code: %w", err)
	}

	return st, nil
}

func (s *Store) ListStaff(ctx context.Context) ([]*staff.Staff, error) {
	query := `SELECT ` + selectColumns + ` FROM staff ORDER BY code ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	var list []*staff.Staff

	for rows.Next() {
		st, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning staff: %w", err)
		}

		list = append(list, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff: %w", err)
	}

	return list, nil
}

func (s *Store) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE staff SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("updating staff password: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return staff.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return staff.ErrInUse
		}

		return fmt.Errorf("deleting staff: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return staff.ErrNotFound
	}

	return nil
}
