package repo

import (
	"context"
	"errors"

	"github.com/kranthi46/Library-management/book"
)

// ErrNotFound is returned when no book matches the requested ISBN
var ErrNotFound = errors.New("book not found")

// Repository defines the interface for catalog storage.
//
// Implementations keep books in insertion order. Point operations address
// the first book added with an ISBN, Delete removes every book with it.
type Repository interface {
	// Close releases the underlying storage
	Close() error

	// Health check
	Ping() error

	// Write operations
	Add(ctx context.Context, b book.Book) error
	AddBatch(ctx context.Context, books []book.Book) error
	UpdateQuantity(ctx context.Context, isbn, quantity int) error
	Delete(ctx context.Context, isbn int) error

	// Lookups
	GetByISBN(ctx context.Context, isbn int) (book.Book, error)
	List(ctx context.Context) ([]book.Book, error)

	// Searches return an empty slice, not ErrNotFound, when nothing matches
	SearchByAuthor(ctx context.Context, author string) ([]book.Book, error)
	SearchByGenre(ctx context.Context, genre string) ([]book.Book, error)
	SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]book.Book, error)
}
