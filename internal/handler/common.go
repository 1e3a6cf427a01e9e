package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/veena-verse/bookshop-backend/internal/cache"
	"github.com/veena-verse/bookshop-backend/internal/config"
	"github.com/veena-verse/bookshop-backend/internal/repository"
	"github.com/veena-verse/bookshop-backend/internal/storage"
)

// Cache groups; mutations invalidate these so the next read re-fetches.
const (
	cacheBooks    = "books"
	cacheRequests = "requests"
	cacheStats    = "stats"
)

// PublicHandler bundles dependencies for the unauthenticated storefront
// endpoints: catalog browsing, book detail, genre list, request intake
// and the link hub.
type PublicHandler struct {
	Cfg      config.Config
	Books    *repository.BookRepo
	Requests *repository.RequestRepo
	Covers   *storage.Covers
	Cache    *cache.Cache
}

// NewPublicHandler constructs a PublicHandler and panics if a required
// dependency is nil.
func NewPublicHandler(cfg config.Config, books *repository.BookRepo, requests *repository.RequestRepo, covers *storage.Covers, c *cache.Cache) *PublicHandler {
	if books == nil || requests == nil || covers == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{Cfg: cfg, Books: books, Requests: requests, Covers: covers, Cache: c}
}

// AdminHandler bundles dependencies for the gated admin area: book CRUD
// with cover uploads, request management and dashboard stats.
type AdminHandler struct {
	Books    *repository.BookRepo
	Requests *repository.RequestRepo
	Covers   *storage.Covers
	Cache    *cache.Cache
}

// NewAdminHandler constructs an AdminHandler and panics if a required
// dependency is nil.
func NewAdminHandler(books *repository.BookRepo, requests *repository.RequestRepo, covers *storage.Covers, c *cache.Cache) *AdminHandler {
	if books == nil || requests == nil || covers == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{Books: books, Requests: requests, Covers: covers, Cache: c}
}

// getUserID extracts the user_id stored in the context by the JWT
// middleware and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
