package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/veena-verse/bookshop-backend/internal/model"
	"github.com/veena-verse/bookshop-backend/internal/repository"
)

// adminRequest is the admin-facing request shape, including the contact
// details the public response never echoes back.
type adminRequest struct {
	ID              uint64  `json:"id"`
	BookTitle       string  `json:"book_title"`
	Author          *string `json:"author"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   *string `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	AdditionalNotes *string `json:"additional_notes"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

func adminRequestOf(r model.BookRequest) adminRequest {
	return adminRequest{
		ID:              r.ID,
		BookTitle:       r.BookTitle,
		Author:          r.Author,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		AdditionalNotes: r.AdditionalNotes,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

var validRequestStatus = map[string]bool{
	model.RequestPending:   true,
	model.RequestFulfilled: true,
	model.RequestCancelled: true,
}

// ListRequests handles GET /v1/admin/requests?status=.  The status
// filter accepts the three lifecycle values plus "all"; the result is
// cached per filter under the requests group.
func (h *AdminHandler) ListRequests(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = "all"
	}
	if status != "all" && !validRequestStatus[status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be all, pending, fulfilled or cancelled"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	key := h.Cache.Key(cacheRequests, "list:"+status)
	var items []adminRequest
	if h.Cache.GetJSON(ctx, key, &items) {
		return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items)})
	}

	requests, err := h.Requests.List(ctx, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	items = make([]adminRequest, 0, len(requests))
	for _, r := range requests {
		items = append(items, adminRequestOf(r))
	}
	h.Cache.PutJSON(ctx, cacheRequests, key, items)

	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items)})
}

type updateRequestStatusReq struct {
	Status string `json:"status"`
}

// UpdateRequestStatus handles PATCH /v1/admin/requests/:id, moving a
// request between pending, fulfilled and cancelled.
func (h *AdminHandler) UpdateRequestStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}
	var req updateRequestStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !validRequestStatus[req.Status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be pending, fulfilled or cancelled"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Requests.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	h.Cache.Invalidate(ctx, cacheRequests, cacheStats)

	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": req.Status})
}

// DeleteRequest handles DELETE /v1/admin/requests/:id.
func (h *AdminHandler) DeleteRequest(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Requests.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.Cache.Invalidate(ctx, cacheRequests, cacheStats)

	return c.JSON(http.StatusOK, echo.Map{"deleted": id})
}
