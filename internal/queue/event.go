// Package queue defines message payloads exchanged over the message broker.
package queue

// RequestCreatedEvent is published when a customer files a book request.
// It carries enough information for downstream consumers to log or
// notify the shop staff without querying the primary database.
type RequestCreatedEvent struct {
    RequestID     uint64 `json:"request_id"`
    BookTitle     string `json:"book_title"`
    Author        string `json:"author,omitempty"`
    CustomerName  string `json:"customer_name"`
    CustomerPhone string `json:"customer_phone"`
    CustomerEmail string `json:"customer_email,omitempty"`
    CreatedAt     string `json:"created_at"`
}
