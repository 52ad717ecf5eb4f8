package repo

import (
	"context"
	"iter"

	"github.com/kranthi46/Library-management/book"
	"github.com/kranthi46/Library-management/collection"
	"github.com/kranthi46/Library-management/logger"
)

// Memory is a Repository over a collection.Collection. Like the collection
// it is meant for a single caller.
type Memory struct {
	books *collection.Collection
}

func NewMemory() *Memory {
	return &Memory{books: collection.New()}
}

func (m *Memory) Close() error { return nil }

func (m *Memory) Ping() error { return nil }

func (m *Memory) Add(ctx context.Context, b book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.books.Add(b)
	return nil
}

// AddBatch appends books in order. The context is checked once, so the
// batch is never split.
func (m *Memory) AddBatch(ctx context.Context, books []book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, b := range books {
		m.books.Add(b)
	}
	logger.Debug("Batch stored", "count", len(books), "total", m.books.Len())
	return nil
}

func (m *Memory) UpdateQuantity(ctx context.Context, isbn, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.books.UpdateQuantity(isbn, quantity) {
		return ErrNotFound
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, isbn int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.books.Delete(isbn) {
		return ErrNotFound
	}
	return nil
}

func (m *Memory) GetByISBN(ctx context.Context, isbn int) (book.Book, error) {
	if err := ctx.Err(); err != nil {
		return book.Book{}, err
	}
	b, ok := m.books.FindByISBN(isbn)
	if !ok {
		return book.Book{}, ErrNotFound
	}
	return b, nil
}

func (m *Memory) List(ctx context.Context) ([]book.Book, error) {
	return collect(ctx, m.books.All())
}

func (m *Memory) SearchByAuthor(ctx context.Context, author string) ([]book.Book, error) {
	return collect(ctx, m.books.SearchByAuthor(author))
}

func (m *Memory) SearchByGenre(ctx context.Context, genre string) ([]book.Book, error) {
	return collect(ctx, m.books.SearchByGenre(genre))
}

func (m *Memory) SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]book.Book, error) {
	return collect(ctx, m.books.SearchByPriceRange(minPrice, maxPrice))
}

func collect(ctx context.Context, seq iter.Seq[book.Book]) ([]book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	books := make([]book.Book, 0)
	for b := range seq {
		books = append(books, b)
	}
	return books, nil
}
