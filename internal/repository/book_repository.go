// This file implements persistence for catalog books.  Books are the
// read-only input of the catalog query pipeline and the subject of the
// admin CRUD surface; the repository itself never orders beyond the
// created_at DESC scan the storefront starts from.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/veena-verse/bookshop-backend/internal/model"
)

const bookColumns = `id, title, author, genre, COALESCE(price, 0), description, isbn,
       cover_image_url, stock_status, quantity, created_at, updated_at`

// BookRepo manages persistence for books.
type BookRepo struct {
	db *sql.DB
}

// NewBookRepo constructs a BookRepo with the given DB handle.
func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

func scanBook(row interface{ Scan(dest ...any) error }, b *model.Book) error {
	var desc, isbn, cover sql.NullString
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.Price, &desc, &isbn,
		&cover, &b.StockStatus, &b.Quantity, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return err
	}
	b.Description = nullStr(desc)
	b.ISBN = nullStr(isbn)
	b.CoverRef = nullStr(cover)
	return nil
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func strArg(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

// List returns every book ordered by creation time descending, the
// ordering the public catalog and the admin table both start from.
// Search, genre filtering and re-sorting happen in the catalog package.
func (r *BookRepo) List(ctx context.Context) ([]model.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Book
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a book by its ID.  It returns ErrBookNotFound if
// there is no matching row.
func (r *BookRepo) GetByID(ctx context.Context, id uint64) (*model.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE id = ?`
	var b model.Book
	if err := scanBook(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a new book and assigns the generated ID back to the
// struct, then re-reads the row so DB defaults (timestamps, stock
// status) are populated.
func (r *BookRepo) Create(ctx context.Context, b *model.Book) error {
	const q = `INSERT INTO books
        (title, author, genre, price, description, isbn, cover_image_url, stock_status, quantity)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, b.Title, b.Author, b.Genre, b.Price,
		strArg(b.Description), strArg(b.ISBN), strArg(b.CoverRef), b.StockStatus, b.Quantity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	const sel = `SELECT ` + bookColumns + ` FROM books WHERE id = ?`
	return scanBook(r.db.QueryRowContext(ctx, sel, b.ID), b)
}

// Update overwrites every mutable column of the book with the given ID.
// When no row matches it returns ErrBookNotFound; an update that changes
// nothing is not an error.
func (r *BookRepo) Update(ctx context.Context, b *model.Book) error {
	const q = `UPDATE books
        SET title = ?, author = ?, genre = ?, price = ?, description = ?, isbn = ?,
            cover_image_url = ?, stock_status = ?, quantity = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, b.Title, b.Author, b.Genre, b.Price,
		strArg(b.Description), strArg(b.ISBN), strArg(b.CoverRef), b.StockStatus, b.Quantity, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// Zero rows affected is either "no such book" or "identical values".
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM books WHERE id = ? LIMIT 1`, b.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}

// Delete removes the book row.  Cover object cleanup is the caller's
// responsibility and happens before this call.
func (r *BookRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookNotFound
	}
	return nil
}

// Count returns the total number of books.
func (r *BookRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&n)
	return n, err
}

// CountByStockStatus returns per-status book counts for the dashboard.
func (r *BookRepo) CountByStockStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT stock_status, COUNT(*) FROM books GROUP BY stock_status`)
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
