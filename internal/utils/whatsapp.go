package utils

import (
    "fmt"
    "net/url"
    "strings"
)

// OrderLink builds a wa.me deep link pre-filled with the order details
// for a book.  Ordering is a manual handoff: the storefront never calls
// a messaging API, it only constructs this URL for the customer to open.
func OrderLink(number, title, author string, price float64) string {
    msg := fmt.Sprintf(
        "Hi! I'm interested in ordering:\n\nTitle: %s\nAuthor: %s\nPrice: Rs. %.2f\n\nPlease let me know the availability and payment options.",
        title, author, price)
    // QueryEscape encodes spaces as '+', which chat apps render
    // literally; use %20 instead.
    encoded := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
    return "https://wa.me/" + number + "?text=" + encoded
}
