// Package service provides business logic layer between the menu and repository
package service

import (
	"context"
	"fmt"

	"github.com/kranthi46/Library-management/book"
	"github.com/kranthi46/Library-management/logger"
	"github.com/kranthi46/Library-management/repo"
	"github.com/kranthi46/Library-management/validator"
)

// Service provides business logic for the application
type Service struct {
	repo repo.Repository
}

// New creates a new Service with the given repository
func New(repo repo.Repository) *Service {
	return &Service{repo: repo}
}

// Write operations

// AddBook validates b and appends it to the catalog. Duplicate ISBNs are
// accepted.
func (s *Service) AddBook(ctx context.Context, b book.Book) error {
	if err := validator.ValidateBook(b); err != nil {
		return fmt.Errorf("add book %d: %w", b.ISBN, err)
	}
	if err := s.repo.Add(ctx, b); err != nil {
		return fmt.Errorf("add book %d: %w", b.ISBN, err)
	}
	logger.Debug("Book added", "isbn", b.ISBN, "title", b.Title)
	return nil
}

// UpdateQuantity sets the stock level of the first book with the ISBN
func (s *Service) UpdateQuantity(ctx context.Context, isbn, quantity int) error {
	if err := validator.ValidateQuantity(quantity); err != nil {
		return fmt.Errorf("update book %d: %w", isbn, err)
	}
	if err := s.repo.UpdateQuantity(ctx, isbn, quantity); err != nil {
		return fmt.Errorf("update book %d: %w", isbn, err)
	}
	logger.Debug("Quantity updated", "isbn", isbn, "quantity", quantity)
	return nil
}

// DeleteBook removes every book with the ISBN
func (s *Service) DeleteBook(ctx context.Context, isbn int) error {
	if err := s.repo.Delete(ctx, isbn); err != nil {
		return fmt.Errorf("delete book %d: %w", isbn, err)
	}
	logger.Debug("Book deleted", "isbn", isbn)
	return nil
}

// Import validates every book before storing any of them, then adds the
// whole list as one batch. Nothing is stored when a book is invalid.
func (s *Service) Import(ctx context.Context, books []book.Book) (int, error) {
	for i, b := range books {
		if err := validator.ValidateBook(b); err != nil {
			return 0, fmt.Errorf("import record %d: %w", i+1, err)
		}
	}

	if err := s.repo.AddBatch(ctx, books); err != nil {
		return 0, fmt.Errorf("import %d books: %w", len(books), err)
	}
	logger.Info("Catalog imported", "count", len(books))
	return len(books), nil
}

// Lookups

// GetBook retrieves the first book with the ISBN
func (s *Service) GetBook(ctx context.Context, isbn int) (book.Book, error) {
	b, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return book.Book{}, fmt.Errorf("get book %d: %w", isbn, err)
	}
	return b, nil
}

// ListBooks retrieves the whole catalog in insertion order
func (s *Service) ListBooks(ctx context.Context) ([]book.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Searches

// SearchByAuthor retrieves books whose author matches exactly
func (s *Service) SearchByAuthor(ctx context.Context, author string) ([]book.Book, error) {
	books, err := s.repo.SearchByAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("search by author %q: %w", author, err)
	}
	return books, nil
}

// SearchByGenre retrieves books whose genre matches exactly
func (s *Service) SearchByGenre(ctx context.Context, genre string) ([]book.Book, error) {
	books, err := s.repo.SearchByGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("search by genre %q: %w", genre, err)
	}
	return books, nil
}

// SearchByPriceRange retrieves books priced within [minPrice, maxPrice].
// An inverted range is not an error, it just matches nothing.
func (s *Service) SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]book.Book, error) {
	if minPrice > maxPrice {
		logger.Debug("Inverted price range", "min", minPrice, "max", maxPrice)
	}
	books, err := s.repo.SearchByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, fmt.Errorf("search by price %v-%v: %w", minPrice, maxPrice, err)
	}
	return books, nil
}

// Health

// Ping checks the health of the service and its dependencies
func (s *Service) Ping(ctx context.Context) error {
	if err := s.repo.Ping(); err != nil {
		return fmt.Errorf("repository ping: %w", err)
	}
	return nil
}
