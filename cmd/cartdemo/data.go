package main

import (
	"time"

	"github.com/veena-verse/bookshop-backend/internal/model"
)

// demoBooks is the fixed catalog the demo browses.  It never touches the
// database: the point of the demo is the cart and the query pipeline,
// not persistence.
func demoBooks() []model.Book {
	day := func(n int) time.Time {
		return time.Date(2025, time.March, n, 0, 0, 0, 0, time.UTC)
	}
	return []model.Book{
		{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Classic", Price: 899, StockStatus: model.StockInStock, Quantity: 4, CreatedAt: day(1)},
		{ID: 2, Title: "1984", Author: "George Orwell", Genre: "Dystopian", Price: 750, StockStatus: model.StockInStock, Quantity: 6, CreatedAt: day(2)},
		{ID: 3, Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance", Price: 650, StockStatus: model.StockInStock, Quantity: 3, CreatedAt: day(3)},
		{ID: 4, Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Classic", Price: 825, StockStatus: model.StockInStock, Quantity: 5, CreatedAt: day(4)},
		{ID: 5, Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Price: 1150, StockStatus: model.StockInStock, Quantity: 2, CreatedAt: day(5)},
		{ID: 6, Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", Price: 990, StockStatus: model.StockInStock, Quantity: 7, CreatedAt: day(6)},
		{ID: 7, Title: "Brave New World", Author: "Aldous Huxley", Genre: "Dystopian", Price: 720, StockStatus: model.StockOutOfStock, Quantity: 0, CreatedAt: day(7)},
		{ID: 8, Title: "Jane Eyre", Author: "Charlotte Brontë", Genre: "Romance", Price: 680, StockStatus: model.StockInStock, Quantity: 4, CreatedAt: day(8)},
		{ID: 9, Title: "Fahrenheit 451", Author: "Ray Bradbury", Genre: "Dystopian", Price: 700, StockStatus: model.StockInStock, Quantity: 3, CreatedAt: day(9)},
		{ID: 10, Title: "The Alchemist", Author: "Paulo Coelho", Genre: "Fiction", Price: 599, StockStatus: model.StockInStock, Quantity: 9, CreatedAt: day(10)},
		{ID: 11, Title: "Sapiens", Author: "Yuval Noah Harari", Genre: "Non-Fiction", Price: 1299, StockStatus: model.StockInStock, Quantity: 5, CreatedAt: day(11)},
		{ID: 12, Title: "Atomic Habits", Author: "James Clear", Genre: "Non-Fiction", Price: 1100, StockStatus: model.StockComingSoon, Quantity: 0, CreatedAt: day(12)},
	}
}
