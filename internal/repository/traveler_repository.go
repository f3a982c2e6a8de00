package repository

import (
	"database/sql"
	"fmt"
)

// TravelerRepository persists the selected-traveler filter between sessions
type TravelerRepository struct {
	db *sql.DB
}

// NewTravelerRepository creates a new traveler repository
func NewTravelerRepository(db *sql.DB) *TravelerRepository {
	return &TravelerRepository{db: db}
}

// Selection returns the selected traveler names, sorted by name. An empty
// selection means no filter is active.
func (r *TravelerRepository) Selection() ([]string, error) {
	rows, err := r.db.Query("SELECT name FROM traveler_selection ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query traveler selection: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan traveler name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SetSelection replaces the selection
func (r *TravelerRepository) SetSelection(names []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin selection update: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM traveler_selection"); err != nil {
		return fmt.Errorf("failed to clear traveler selection: %w", err)
	}
	for _, name := range names {
		if _, err := tx.Exec("INSERT OR IGNORE INTO traveler_selection (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("failed to insert traveler %s: %w", name, err)
		}
	}
	return tx.Commit()
}
