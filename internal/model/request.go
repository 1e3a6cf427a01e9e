package model

import "time"

// Book request status values stored in book_requests.status.
const (
    RequestPending   = "pending"
    RequestFulfilled = "fulfilled"
    RequestCancelled = "cancelled"
)

// BookRequest is a customer's ask for a title the shop does not carry.
// Rows are created by the public request form; status changes and
// deletion are admin-only operations.
//
// Fields:
//  ID              – primary key identifier.
//  BookTitle       – requested title (required).
//  Author          – requested author (nullable).
//  CustomerName    – requester's name (required).
//  CustomerEmail   – contact email (nullable).
//  CustomerPhone   – contact phone (required).
//  AdditionalNotes – free-text notes (nullable).
//  Status          – one of the Request* constants, defaults pending.
//  CreatedAt       – timestamp when the request was filed.
type BookRequest struct {
    ID              uint64    // book_requests.id
    BookTitle       string    // book_requests.book_title
    Author          *string   // book_requests.author (nullable)
    CustomerName    string    // book_requests.customer_name
    CustomerEmail   *string   // book_requests.customer_email (nullable)
    CustomerPhone   string    // book_requests.customer_phone
    AdditionalNotes *string   // book_requests.additional_notes (nullable)
    Status          string    // book_requests.status
    CreatedAt       time.Time // book_requests.created_at
}
