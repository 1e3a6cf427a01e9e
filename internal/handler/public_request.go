// This file defines the public book-request intake endpoint.  Customers
// who cannot find a title file a request; validation failures are caught
// before any remote call, and a broker outage never blocks acceptance.

package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/veena-verse/bookshop-backend/internal/model"
	"github.com/veena-verse/bookshop-backend/internal/queue"
	queue_publisher "github.com/veena-verse/bookshop-backend/internal/service"
)

type createRequestReq struct {
	BookTitle       string `json:"book_title" validate:"required"`
	Author          string `json:"author"`
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required"`
	AdditionalNotes string `json:"additional_notes"`
}

type requestResp struct {
	ID        uint64    `json:"id"`
	BookTitle string    `json:"book_title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// CreateRequest handles POST /v1/requests.
func (h *PublicHandler) CreateRequest(c echo.Context) error {
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.BookTitle = strings.TrimSpace(req.BookTitle)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "book_title, customer_name and customer_phone are required"})
	}

	rec := &model.BookRequest{
		BookTitle:       req.BookTitle,
		Author:          optStr(req.Author),
		CustomerName:    req.CustomerName,
		CustomerEmail:   optStr(req.CustomerEmail),
		CustomerPhone:   req.CustomerPhone,
		AdditionalNotes: optStr(req.AdditionalNotes),
	}
	if err := h.Requests.Create(c.Request().Context(), rec); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save request"})
	}
	h.Cache.Invalidate(c.Request().Context(), cacheRequests, cacheStats)

	// Notify staff off the request path; a broker failure only logs.
	ev := queue.RequestCreatedEvent{
		RequestID:     rec.ID,
		BookTitle:     rec.BookTitle,
		CustomerName:  rec.CustomerName,
		CustomerPhone: rec.CustomerPhone,
		CreatedAt:     rec.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
	if rec.Author != nil {
		ev.Author = *rec.Author
	}
	if rec.CustomerEmail != nil {
		ev.CustomerEmail = *rec.CustomerEmail
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := queue_publisher.PublishRequestCreated(ctx, ev); err != nil {
			log.Printf("request %d created but notification failed: %v", ev.RequestID, err)
		}
	}()

	return c.JSON(http.StatusCreated, requestResp{
		ID:        rec.ID,
		BookTitle: rec.BookTitle,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
	})
}
