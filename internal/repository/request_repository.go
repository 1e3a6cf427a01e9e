// This file implements persistence for book requests: rows filed by the
// public request form and managed (status changes, deletion) from the
// admin area.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/veena-verse/bookshop-backend/internal/model"
)

const requestColumns = `id, book_title, author, customer_name, customer_email,
       customer_phone, additional_notes, status, created_at`

// RequestRepo manages persistence for book requests.
type RequestRepo struct {
	db *sql.DB
}

// NewRequestRepo constructs a RequestRepo with the given DB handle.
func NewRequestRepo(db *sql.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

func scanRequest(row interface{ Scan(dest ...any) error }, req *model.BookRequest) error {
	var author, email, notes sql.NullString
	err := row.Scan(&req.ID, &req.BookTitle, &author, &req.CustomerName, &email,
		&req.CustomerPhone, &notes, &req.Status, &req.CreatedAt)
	if err != nil {
		return err
	}
	req.Author = nullStr(author)
	req.CustomerEmail = nullStr(email)
	req.AdditionalNotes = nullStr(notes)
	return nil
}

// Create inserts a request with the pending default status and populates
// the generated ID and DB defaults on the struct.
func (r *RequestRepo) Create(ctx context.Context, req *model.BookRequest) error {
	const q = `INSERT INTO book_requests
        (book_title, author, customer_name, customer_email, customer_phone, additional_notes)
        VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, req.BookTitle, strArg(req.Author), req.CustomerName,
		strArg(req.CustomerEmail), req.CustomerPhone, strArg(req.AdditionalNotes))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	req.ID = uint64(id)
	const sel = `SELECT ` + requestColumns + ` FROM book_requests WHERE id = ?`
	return scanRequest(r.db.QueryRowContext(ctx, sel, req.ID), req)
}

// List returns requests ordered by creation time descending, optionally
// filtered by status.  An empty status or "all" disables the filter.
func (r *RequestRepo) List(ctx context.Context, status string) ([]model.BookRequest, error) {
	q := `SELECT ` + requestColumns + ` FROM book_requests`
	var args []any
	if status != "" && status != "all" {
		q += ` WHERE status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.BookRequest
	for rows.Next() {
		var req model.BookRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListRecent returns the latest requests for the dashboard panel.
func (r *RequestRepo) ListRecent(ctx context.Context, limit int) ([]model.BookRequest, error) {
	const q = `SELECT ` + requestColumns + ` FROM book_requests ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.BookRequest
	for rows.Next() {
		var req model.BookRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, rows.Err()
}

// UpdateStatus sets the status of the request with the given ID.  It
// returns ErrRequestNotFound when no row matches; setting the same
// status twice is not an error.
func (r *RequestRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE book_requests SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM book_requests WHERE id = ? LIMIT 1`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRequestNotFound
		}
		return err
	}
	return nil
}

// Delete removes the request row, returning ErrRequestNotFound when no
// row matches.
func (r *RequestRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM book_requests WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// Count returns the total number of requests.
func (r *RequestRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM book_requests`).Scan(&n)
	return n, err
}

// CountByStatus returns per-status request counts for the dashboard.
func (r *RequestRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM book_requests GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}
