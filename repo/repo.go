package repo

import (
	"database/sql"

	"github.com/kranthi46/Library-management/logger"
)

// Repo is a Repository backed by a private in-memory SQLite database.
// Nothing is written to disk and the catalog disappears on Close.
type Repo struct {
	db   *sql.DB
	name string
}

func (r *Repo) Close() error {
	if r.db != nil {
		logger.Info("Closing database connection", "db", r.name)
		return r.db.Close()
	}
	return nil
}

func (r *Repo) Ping() error {
	if r.db != nil {
		return r.db.Ping()
	}
	return sql.ErrConnDone
}
