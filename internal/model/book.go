package model

import "time"

// Stock status values stored in books.stock_status.  The catalog and
// the admin surface share these constants; anything else found in the
// column is treated as StockInStock by display code.
const (
    StockInStock    = "in_stock"
    StockOutOfStock = "out_of_stock"
    StockComingSoon = "coming_soon"
)

// Book represents one catalog entry as stored in the `books` table.
// Books are owned by the record store and mutated only through the
// admin CRUD surface; catalog reads never modify them.
//
// Fields:
//  ID            – primary key identifier.
//  Title         – book title.
//  Author        – author name.
//  Genre         – free-text genre/category used for catalog filtering.
//  Price         – non-negative price; a missing price sorts as zero.
//  Description   – optional long description (nullable).
//  ISBN          – optional ISBN string (nullable).
//  CoverRef      – optional cover reference: a storage path or an
//                  absolute URL (nullable).
//  StockStatus   – one of the Stock* constants.
//  Quantity      – non-negative number of copies on hand.
//  CreatedAt     – timestamp when the record was created.
//  UpdatedAt     – timestamp of last update.
type Book struct {
    ID          uint64     // books.id
    Title       string     // books.title
    Author      string     // books.author
    Genre       string     // books.genre
    Price       float64    // books.price
    Description *string    // books.description (nullable)
    ISBN        *string    // books.isbn (nullable)
    CoverRef    *string    // books.cover_image_url (nullable)
    StockStatus string     // books.stock_status
    Quantity    uint32     // books.quantity
    CreatedAt   time.Time  // books.created_at
    UpdatedAt   time.Time  // books.updated_at
}
