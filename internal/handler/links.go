package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
)

// LinkItem is one entry of the link hub page.
type LinkItem struct {
    Title       string `json:"title"`
    Description string `json:"description"`
    URL         string `json:"url"`
    Internal    bool   `json:"internal"`
}

// GetLinks handles GET /v1/links: the link-hub set pointing at the
// catalog, the request form and the WhatsApp chat.
func (h *PublicHandler) GetLinks(c echo.Context) error {
    base := strings.TrimRight(h.Cfg.PublicBaseURL, "/")
    items := []LinkItem{
        {
            Title:       "Browse Our Collection",
            Description: "Explore our curated catalog of books",
            URL:         base + "/",
            Internal:    true,
        },
        {
            Title:       "Request a Book",
            Description: "Can't find it? We'll try to get it for you",
            URL:         base + "/request",
            Internal:    true,
        },
        {
            Title:       "Chat on WhatsApp",
            Description: "Talk to us directly about orders",
            URL:         "https://wa.me/" + h.Cfg.WhatsAppNumber,
            Internal:    false,
        },
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}
