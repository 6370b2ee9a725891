package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"companygen/company"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	isin TEXT NOT NULL,
	name TEXT NOT NULL,
	source_file TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(isin, name)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertCompanies persists records into the catalog, ignoring rows that
// already exist with the same ISIN and name. Returns the inserted count.
func (s *SQLiteStore) InsertCompanies(records []company.Record, sourceFile string) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	const insertStmt = `
INSERT OR IGNORE INTO companies (isin, name, source_file) VALUES (?, ?, ?);`

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, record := range records {
		res, err := stmt.Exec(record.ISIN, record.Name, sourceFile)
		if err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert company: %w", err)
		}

		rows, err := res.RowsAffected()
		if err == nil && rows > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ListCompanies returns all catalog rows in insertion order. Callers that
// need locale order sort the result themselves.
func (s *SQLiteStore) ListCompanies() ([]company.Record, error) {
	const query = `SELECT isin, name FROM companies ORDER BY id;`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	records := make([]company.Record, 0, 256)
	for rows.Next() {
		var record company.Record
		if err := rows.Scan(&record.ISIN, &record.Name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}

	return records, nil
}

func (s *SQLiteStore) DeleteAllCompanies() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM companies;`)
	if err != nil {
		return 0, fmt.Errorf("delete companies: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read deleted row count: %w", err)
	}
	return rows, nil
}
