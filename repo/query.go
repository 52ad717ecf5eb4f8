package repo

import (
	"context"
	"fmt"

	"github.com/kranthi46/Library-management/book"
)

func (r *Repo) List(ctx context.Context) ([]book.Book, error) {
	return r.queryBooks(ctx, `SELECT `+bookColumns+` FROM books ORDER BY seq`)
}

// SearchByAuthor relies on SQLite's default BINARY collation, so the match
// is exact and case-sensitive.
func (r *Repo) SearchByAuthor(ctx context.Context, author string) ([]book.Book, error) {
	return r.queryBooks(ctx, `SELECT `+bookColumns+` FROM books WHERE author = ? ORDER BY seq`, author)
}

func (r *Repo) SearchByGenre(ctx context.Context, genre string) ([]book.Book, error) {
	return r.queryBooks(ctx, `SELECT `+bookColumns+` FROM books WHERE genre = ? ORDER BY seq`, genre)
}

func (r *Repo) SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]book.Book, error) {
	QUERY := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE price >= ? AND price <= ?
		ORDER BY seq
	`
	return r.queryBooks(ctx, QUERY, minPrice, maxPrice)
}

func (r *Repo) queryBooks(ctx context.Context, query string, args ...any) ([]book.Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ISBN, &b.Title, &b.Author, &b.Quantity, &b.Price, &b.Genre); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}
