package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/veena-verse/bookshop-backend/internal/model"
	"github.com/veena-verse/bookshop-backend/internal/repository"
	"github.com/veena-verse/bookshop-backend/internal/storage"
)

// adminBook is the admin-facing book shape.  Unlike the public DTO it
// exposes the raw stored cover reference alongside the resolved URL so
// the admin UI can show what is actually persisted.
type adminBook struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Genre       string  `json:"genre"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	ISBN        *string `json:"isbn"`
	CoverRef    *string `json:"cover_ref"`
	CoverURL    string  `json:"cover_url"`
	StockStatus string  `json:"stock_status"`
	Quantity    uint32  `json:"quantity"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (h *AdminHandler) adminBook(b model.Book) adminBook {
	cover := ""
	if b.CoverRef != nil {
		cover = h.Covers.PublicURL(*b.CoverRef)
	}
	return adminBook{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Price:       b.Price,
		Description: b.Description,
		ISBN:        b.ISBN,
		CoverRef:    b.CoverRef,
		CoverURL:    cover,
		StockStatus: b.StockStatus,
		Quantity:    b.Quantity,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

var validStockStatus = map[string]bool{
	model.StockInStock:    true,
	model.StockOutOfStock: true,
	model.StockComingSoon: true,
}

// ListBooks returns the full catalog newest-first for the admin table.
// The admin view reads the database directly: the operator editing the
// catalog must see their own writes immediately.
func (h *AdminHandler) ListBooks(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	books, err := h.Books.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	items := make([]adminBook, 0, len(books))
	for _, b := range books {
		items = append(items, h.adminBook(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items)})
}

// bookForm reads the multipart fields shared by create and update.
// Numeric fields parse strictly; a bad value comes back as an error
// message for the admin rather than a silent zero.
func bookForm(c echo.Context, b *model.Book) error {
	b.Title = strings.TrimSpace(c.FormValue("title"))
	b.Author = strings.TrimSpace(c.FormValue("author"))
	b.Genre = strings.TrimSpace(c.FormValue("genre"))
	if b.Title == "" || b.Author == "" || b.Genre == "" {
		return errors.New("title, author and genre are required")
	}

	if raw := strings.TrimSpace(c.FormValue("price")); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			return errors.New("price must be a non-negative number")
		}
		b.Price = price
	} else {
		b.Price = 0
	}

	if raw := strings.TrimSpace(c.FormValue("quantity")); raw != "" {
		qty, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return errors.New("quantity must be a non-negative integer")
		}
		b.Quantity = uint32(qty)
	} else {
		b.Quantity = 0
	}

	if status := strings.TrimSpace(c.FormValue("stock_status")); status != "" {
		if !validStockStatus[status] {
			return errors.New("stock_status must be in_stock, out_of_stock or coming_soon")
		}
		b.StockStatus = status
	} else {
		b.StockStatus = model.StockInStock
	}

	b.Description = optStr(c.FormValue("description"))
	b.ISBN = optStr(c.FormValue("isbn"))
	return nil
}

// uploadCover stores the optional "cover" form file and returns its
// object path.  A missing file is not an error; a rejected file is.
func (h *AdminHandler) uploadCover(c echo.Context) (*string, error) {
	fh, err := c.FormFile("cover")
	if err != nil {
		return nil, nil // no file attached
	}
	contentType := fh.Header.Get("Content-Type")
	if err := storage.ValidateCover(contentType, fh.Size); err != nil {
		return nil, err
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()
	ref, err := h.Covers.Upload(ctx, fh.Filename, contentType, fh.Size, src)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// CreateBook adds a catalog entry.  The cover, when attached, is
// uploaded before the row is inserted so a failed upload never leaves
// a book pointing at a missing object.
func (h *AdminHandler) CreateBook(c echo.Context) error {
	var b model.Book
	if err := bookForm(c, &b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	cover, err := h.uploadCover(c)
	if err != nil {
		if errors.Is(err, storage.ErrCoverType) || errors.Is(err, storage.ErrCoverTooLarge) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "cover upload failed"})
	}
	b.CoverRef = cover

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Books.Create(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert failed"})
	}
	h.Cache.Invalidate(ctx, cacheBooks, cacheStats)

	return c.JSON(http.StatusCreated, h.adminBook(b))
}

// UpdateBook overwrites a book's fields from the form.  A request with
// no cover file keeps the existing cover; a request with one stores the
// new object and points the record at it (the old object is left in
// place).
func (h *AdminHandler) UpdateBook(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid book id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	existing, err := h.Books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	b := model.Book{ID: id, CoverRef: existing.CoverRef}
	if err := bookForm(c, &b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	cover, err := h.uploadCover(c)
	if err != nil {
		if errors.Is(err, storage.ErrCoverType) || errors.Is(err, storage.ErrCoverTooLarge) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "cover upload failed"})
	}
	if cover != nil {
		b.CoverRef = cover
	}

	if err := h.Books.Update(ctx, &b); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	h.Cache.Invalidate(ctx, cacheBooks, cacheStats)

	updated, err := h.Books.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, h.adminBook(*updated))
}

// DeleteBook removes a book.  Its cover object is removed first on a
// best-effort basis: a storage failure is reported in the response but
// never blocks deleting the record.
func (h *AdminHandler) DeleteBook(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid book id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()
	b, err := h.Books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	var warning string
	if b.CoverRef != nil {
		if err := h.Covers.Delete(ctx, *b.CoverRef); err != nil {
			warning = "cover image could not be removed from storage"
			c.Logger().Warnf("delete cover %s: %v", *b.CoverRef, err)
		}
	}

	if err := h.Books.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.Cache.Invalidate(ctx, cacheBooks, cacheStats)

	resp := echo.Map{"deleted": id}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(http.StatusOK, resp)
}
