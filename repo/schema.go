package repo

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kranthi46/Library-management/config"
	"github.com/kranthi46/Library-management/logger"
)

// GetStorage opens a fresh in-memory SQLite catalog. Every call gets its
// own database, named by a random UUID, so stores never share rows.
func GetStorage(cfg config.StoreConfig) (*Repo, error) {
	r := &Repo{name: uuid.NewString()}

	db, err := sql.Open("sqlite3", "file:"+r.name+"?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	maxConns := cfg.MaxOpenConns
	if maxConns < 1 {
		maxConns = 1
	}
	db.SetMaxOpenConns(maxConns)
	// The in-memory database lives only as long as one connection does.
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	r.db = db

	if err := r.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	logger.Debug("Opened in-memory catalog", "db", r.name, "max_open_conns", maxConns)
	return r, nil
}

func (r *Repo) createSchema() error {
	// seq is AUTOINCREMENT so it never reuses values after deletes and
	// ordering by it gives insertion order.
	sqlStmt := `
           CREATE TABLE IF NOT EXISTS "books" (
                seq integer primary key autoincrement not null,
                isbn integer not null,
                title text not null default '',
                author text not null default '',
                quantity integer not null default 0,
                price real not null default 0,
                genre text not null default ''
            );
           CREATE INDEX IF NOT EXISTS [I_isbn] ON "books" ([isbn]);
           CREATE INDEX IF NOT EXISTS [I_author] ON "books" ([author]);
           CREATE INDEX IF NOT EXISTS [I_genre] ON "books" ([genre]);
           CREATE INDEX IF NOT EXISTS [I_price] ON "books" ([price]);
  	    `
	_, err := r.db.Exec(sqlStmt)
	return err
}
