// Package cart implements the demo storefront's shopping cart: quantity-
// merged line items keyed by book identity, a running total, and a JSON
// snapshot format for persistence.  The cart is an explicitly owned value
// mutated through its methods; durability is a separate concern handled
// by a Store (see store.go).
package cart

import (
    "encoding/json"
    "fmt"

    "github.com/veena-verse/bookshop-backend/internal/model"
)

// LineItem is one aggregated cart entry per distinct book identifier.
// Title, author and price are denormalized copies taken from the catalog
// at the time of the first add.
type LineItem struct {
    BookID   uint64  `json:"book_id"`
    Title    string  `json:"title"`
    Author   string  `json:"author"`
    Price    float64 `json:"price"`
    Quantity uint32  `json:"quantity"`
}

// Cart holds the ordered sequence of line items.  The zero value is an
// empty, usable cart.
type Cart struct {
    items []LineItem
}

// New returns an empty cart.
func New() *Cart { return &Cart{} }

// FromSnapshot rebuilds a cart from a serialized snapshot.  A missing or
// malformed snapshot yields an empty cart rather than an error so that a
// corrupt stored blob can never take the storefront down.
func FromSnapshot(data []byte) *Cart {
    c := &Cart{}
    if len(data) == 0 {
        return c
    }
    var items []LineItem
    if err := json.Unmarshal(data, &items); err != nil {
        return c
    }
    c.items = items
    return c
}

// Snapshot serializes the full cart as an ordered line-item sequence.
func (c *Cart) Snapshot() ([]byte, error) {
    if c.items == nil {
        return json.Marshal([]LineItem{})
    }
    return json.Marshal(c.items)
}

// Add upserts a line item for the book with the given id, looking it up
// in the supplied catalog.  An unknown id is a silent no-op, reported by
// the false return.  Repeat adds of the same id increment the existing
// item's quantity, preserving the invariant of at most one line item per
// book identifier.
func (c *Cart) Add(books []model.Book, bookID uint64) bool {
    var found *model.Book
    for i := range books {
        if books[i].ID == bookID {
            found = &books[i]
            break
        }
    }
    if found == nil {
        return false
    }
    for i := range c.items {
        if c.items[i].BookID == bookID {
            c.items[i].Quantity++
            return true
        }
    }
    c.items = append(c.items, LineItem{
        BookID:   found.ID,
        Title:    found.Title,
        Author:   found.Author,
        Price:    found.Price,
        Quantity: 1,
    })
    return true
}

// Remove deletes the line item for the given id wholesale; absent ids
// are a no-op.
func (c *Cart) Remove(bookID uint64) {
    for i := range c.items {
        if c.items[i].BookID == bookID {
            c.items = append(c.items[:i], c.items[i+1:]...)
            return
        }
    }
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
    out := make([]LineItem, len(c.items))
    copy(out, c.items)
    return out
}

// Count returns the total quantity across all line items, as shown on
// the cart badge.
func (c *Cart) Count() uint32 {
    var n uint32
    for _, it := range c.items {
        n += it.Quantity
    }
    return n
}

// Total returns sum(price*quantity) formatted to two decimal places.
func (c *Cart) Total() string {
    var sum float64
    for _, it := range c.items {
        sum += it.Price * float64(it.Quantity)
    }
    return fmt.Sprintf("%.2f", sum)
}

// Empty reports whether the cart holds no line items.
func (c *Cart) Empty() bool { return len(c.items) == 0 }

// Checkout clears the entire cart when it is non-empty and reports
// whether anything was checked out.  There is no partial checkout and no
// inventory decrement.
func (c *Cart) Checkout() bool {
    if len(c.items) == 0 {
        return false
    }
    c.items = nil
    return true
}
