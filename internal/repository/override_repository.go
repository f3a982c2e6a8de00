package repository

import (
	"database/sql"
	"fmt"
)

// OverrideRepository handles database operations for manual visited-country
// overrides. The table mirrors the reconciler's contract: it only ever holds
// disagreements with automation.
type OverrideRepository struct {
	db *sql.DB
}

// NewOverrideRepository creates a new override repository
func NewOverrideRepository(db *sql.DB) *OverrideRepository {
	return &OverrideRepository{db: db}
}

// All returns the override map (iso code -> forced visited state)
func (r *OverrideRepository) All() (map[string]bool, error) {
	rows, err := r.db.Query("SELECT iso_code, visited FROM country_overrides")
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string]bool)
	for rows.Next() {
		var code string
		var visited int
		if err := rows.Scan(&code, &visited); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		overrides[code] = visited != 0
	}
	return overrides, rows.Err()
}

// Set upserts one override entry
func (r *OverrideRepository) Set(code string, visited bool) error {
	v := 0
	if visited {
		v = 1
	}
	_, err := r.db.Exec(`
		INSERT INTO country_overrides (iso_code, visited) VALUES (?, ?)
		ON CONFLICT(iso_code) DO UPDATE SET visited = excluded.visited, updated_at = CURRENT_TIMESTAMP
	`, code, v)
	if err != nil {
		return fmt.Errorf("failed to set override for %s: %w", code, err)
	}
	return nil
}

// Delete removes an override entry, if present
func (r *OverrideRepository) Delete(code string) error {
	if _, err := r.db.Exec("DELETE FROM country_overrides WHERE iso_code = ?", code); err != nil {
		return fmt.Errorf("failed to delete override for %s: %w", code, err)
	}
	return nil
}

// Replace swaps the whole override map in one transaction (bundle re-import)
func (r *OverrideRepository) Replace(overrides map[string]bool) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin override replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM country_overrides"); err != nil {
		return fmt.Errorf("failed to clear overrides: %w", err)
	}
	for code, visited := range overrides {
		v := 0
		if visited {
			v = 1
		}
		if _, err := tx.Exec("INSERT INTO country_overrides (iso_code, visited) VALUES (?, ?)", code, v); err != nil {
			return fmt.Errorf("failed to insert override for %s: %w", code, err)
		}
	}
	return tx.Commit()
}
