package utils_test

import (
    "net/url"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/veena-verse/bookshop-backend/internal/utils"
)

func TestOrderLink(t *testing.T) {
    link := utils.OrderLink("94771234567", "The Odyssey", "Homer", 15.99)
    require.True(t, strings.HasPrefix(link, "https://wa.me/94771234567?text="))
    assert.NotContains(t, link, "+", "spaces must be percent-encoded, not '+'")

    u, err := url.Parse(link)
    require.NoError(t, err)
    msg := u.Query().Get("text")
    assert.Contains(t, msg, "Title: The Odyssey")
    assert.Contains(t, msg, "Author: Homer")
    assert.Contains(t, msg, "Price: Rs. 15.99")
}

func TestOrderLinkMissingPrice(t *testing.T) {
    link := utils.OrderLink("94771234567", "Zed", "Nina Hale", 0)
    u, err := url.Parse(link)
    require.NoError(t, err)
    assert.Contains(t, u.Query().Get("text"), "Rs. 0.00")
}
