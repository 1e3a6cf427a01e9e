package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/veena-verse/bookshop-backend/internal/model"
)

// dashboardStats is the admin landing page payload: headline counts for
// books and requests plus the most recent requests.
type dashboardStats struct {
	Books struct {
		Total   int64            `json:"total"`
		ByStock map[string]int64 `json:"by_stock_status"`
	} `json:"books"`
	Requests struct {
		Total    int64            `json:"total"`
		Pending  int64            `json:"pending"`
		ByStatus map[string]int64 `json:"by_status"`
	} `json:"requests"`
	RecentRequests []adminRequest `json:"recent_requests"`
}

// GetStats handles GET /v1/admin/stats.  The five count queries and the
// recent-requests scan run concurrently; the assembled payload is cached
// under the stats group, which every book and request mutation
// invalidates.
func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	key := h.Cache.Key(cacheStats, "dashboard")
	var stats dashboardStats
	if h.Cache.GetJSON(ctx, key, &stats) {
		return c.JSON(http.StatusOK, stats)
	}

	var recent []model.BookRequest
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := h.Books.Count(gctx)
		stats.Books.Total = n
		return err
	})
	g.Go(func() error {
		m, err := h.Books.CountByStockStatus(gctx)
		stats.Books.ByStock = m
		return err
	})
	g.Go(func() error {
		n, err := h.Requests.Count(gctx)
		stats.Requests.Total = n
		return err
	})
	g.Go(func() error {
		m, err := h.Requests.CountByStatus(gctx)
		stats.Requests.ByStatus = m
		return err
	})
	g.Go(func() error {
		rs, err := h.Requests.ListRecent(gctx, 5)
		recent = rs
		return err
	})
	if err := g.Wait(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if stats.Books.ByStock == nil {
		stats.Books.ByStock = map[string]int64{}
	}
	if stats.Requests.ByStatus == nil {
		stats.Requests.ByStatus = map[string]int64{}
	}
	stats.Requests.Pending = stats.Requests.ByStatus[model.RequestPending]
	stats.RecentRequests = make([]adminRequest, 0, len(recent))
	for _, r := range recent {
		stats.RecentRequests = append(stats.RecentRequests, adminRequestOf(r))
	}
	h.Cache.PutJSON(ctx, cacheStats, key, stats)

	return c.JSON(http.StatusOK, stats)
}
