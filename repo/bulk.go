package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kranthi46/Library-management/book"
	"github.com/kranthi46/Library-management/logger"
)

// AddBatch adds multiple books in a single transaction. Either all of them
// are stored, in order, or none are.
func (r *Repo) AddBatch(ctx context.Context, records []book.Book) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Error("Failed to rollback transaction", "error", err)
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO books(`+bookColumns+`) VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range records {
		if _, err := stmt.ExecContext(ctx, b.ISBN, b.Title, b.Author, b.Quantity, b.Price, b.Genre); err != nil {
			return fmt.Errorf("insert book %d: %w", b.ISBN, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	logger.Debug("Batch stored", "count", len(records))
	return nil
}
