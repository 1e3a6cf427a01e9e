// This file defines handlers for the public catalog API: the searchable,
// filterable, sortable book list, single-book detail with the WhatsApp
// order handoff link, and the genre list rendered as filter tabs.
// Responses carry only customer-facing fields.

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/veena-verse/bookshop-backend/internal/catalog"
	"github.com/veena-verse/bookshop-backend/internal/model"
	"github.com/veena-verse/bookshop-backend/internal/repository"
	"github.com/veena-verse/bookshop-backend/internal/utils"
)

// PublicBook is a catalog entry exposed via the public API.
type PublicBook struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ISBN        string    `json:"isbn,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	StockStatus string    `json:"stock_status"`
	Quantity    uint32    `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicBookDetail adds the manual order handoff link to the detail
// response.
type PublicBookDetail struct {
	PublicBook
	OrderURL string `json:"order_url"`
}

func (h *PublicHandler) publicBook(b model.Book) PublicBook {
	out := PublicBook{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Price:       b.Price,
		StockStatus: b.StockStatus,
		Quantity:    b.Quantity,
		CreatedAt:   b.CreatedAt,
	}
	if b.Description != nil {
		out.Description = *b.Description
	}
	if b.ISBN != nil {
		out.ISBN = *b.ISBN
	}
	if b.CoverRef != nil {
		out.CoverURL = h.Covers.PublicURL(*b.CoverRef)
	}
	return out
}

// listBooks loads the full record set, through the cache when one is
// configured.  The cached unit is the raw created_at DESC scan; the
// query pipeline runs on every request, the way the storefront re-ran
// it per keystroke over the cached fetch.
func (h *PublicHandler) listBooks(c echo.Context) ([]model.Book, error) {
	ctx := c.Request().Context()
	key := h.Cache.Key(cacheBooks, "list")

	var books []model.Book
	if h.Cache.GetJSON(ctx, key, &books) {
		return books, nil
	}
	books, err := h.Books.List(ctx)
	if err != nil {
		return nil, err
	}
	h.Cache.PutJSON(ctx, cacheBooks, key, books)
	return books, nil
}

// GetBooks handles GET /v1/books?search=&genre=&sort=.
func (h *PublicHandler) GetBooks(c echo.Context) error {
	search := c.QueryParam("search")
	genre := c.QueryParam("genre")
	if genre == "" {
		genre = catalog.GenreAll
	}
	sortKey := c.QueryParam("sort")
	if sortKey == "" {
		sortKey = catalog.DefaultSort
	}
	if !catalog.ValidSort(sortKey) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("unknown sort key %q", sortKey)})
	}

	books, err := h.listBooks(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	filtered := catalog.Apply(books, search, genre, sortKey)
	out := make([]PublicBook, 0, len(filtered))
	for _, b := range filtered {
		out = append(out, h.publicBook(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out, "total": len(out)})
}

// GetBook handles GET /v1/books/:id.  A missing book renders a dedicated
// not-found state with a return link rather than a bare 404.
func (h *PublicHandler) GetBook(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Books.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":     "book not found",
				"return_to": h.Cfg.PublicBaseURL,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, PublicBookDetail{
		PublicBook: h.publicBook(*b),
		OrderURL:   utils.OrderLink(h.Cfg.WhatsAppNumber, b.Title, b.Author, b.Price),
	})
}

// GetGenres handles GET /v1/genres and returns the distinct genres of
// the catalog, sorted, for the filter tabs next to "all".
func (h *PublicHandler) GetGenres(c echo.Context) error {
	books, err := h.listBooks(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	genres := catalog.Genres(books)
	if genres == nil {
		genres = []string{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": genres})
}
