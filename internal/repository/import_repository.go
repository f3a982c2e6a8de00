package repository

import (
	"database/sql"
	"fmt"
)

// Import source constants
const (
	ImportSourceUpload = "upload"
	ImportSourceBundle = "bundle"
)

// ImportRepository handles database operations for raw document imports
type ImportRepository struct {
	db *sql.DB
}

// NewImportRepository creates a new import repository
func NewImportRepository(db *sql.DB) *ImportRepository {
	return &ImportRepository{db: db}
}

// Save stores a raw export document and returns its id. The payload is kept
// byte-for-byte so the export path can return the source unchanged.
func (r *ImportRepository) Save(payload []byte, source string) (int64, error) {
	result, err := r.db.Exec(
		"INSERT INTO imports (payload, source) VALUES (?, ?)",
		string(payload), source,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save import: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read import id: %w", err)
	}
	return id, nil
}

// Latest returns the payload of the most recent import, or nil when nothing
// has been imported yet.
func (r *ImportRepository) Latest() ([]byte, error) {
	var payload string
	err := r.db.QueryRow(
		"SELECT payload FROM imports ORDER BY id DESC LIMIT 1",
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest import: %w", err)
	}
	return []byte(payload), nil
}

// Count returns the number of stored imports
func (r *ImportRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM imports").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count imports: %w", err)
	}
	return count, nil
}
