package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kranthi46/Library-management/book"
)

const bookColumns = `isbn, title, author, quantity, price, genre`

func (r *Repo) Add(ctx context.Context, b book.Book) error {
	const INSERT_BOOK = `INSERT INTO books(` + bookColumns + `) VALUES(?, ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, INSERT_BOOK, b.ISBN, b.Title, b.Author, b.Quantity, b.Price, b.Genre); err != nil {
		return fmt.Errorf("insert book %d: %w", b.ISBN, err)
	}
	return nil
}

func (r *Repo) GetByISBN(ctx context.Context, isbn int) (book.Book, error) {
	QUERY := `SELECT ` + bookColumns + ` FROM books WHERE isbn = ? ORDER BY seq LIMIT 1`

	var b book.Book
	err := r.db.QueryRowContext(ctx, QUERY, isbn).
		Scan(&b.ISBN, &b.Title, &b.Author, &b.Quantity, &b.Price, &b.Genre)
	if errors.Is(err, sql.ErrNoRows) {
		return book.Book{}, ErrNotFound
	}
	if err != nil {
		return book.Book{}, fmt.Errorf("query book %d: %w", isbn, err)
	}
	return b, nil
}

// UpdateQuantity changes only the earliest row with the ISBN.
func (r *Repo) UpdateQuantity(ctx context.Context, isbn, quantity int) error {
	UPDATE := `
		UPDATE books SET quantity = ?
		WHERE seq = (SELECT seq FROM books WHERE isbn = ? ORDER BY seq LIMIT 1)
	`
	res, err := r.db.ExecContext(ctx, UPDATE, quantity, isbn)
	if err != nil {
		return fmt.Errorf("update quantity of %d: %w", isbn, err)
	}
	return requireAffected(res)
}

// Delete removes every row with the ISBN.
func (r *Repo) Delete(ctx context.Context, isbn int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE isbn = ?`, isbn)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", isbn, err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
