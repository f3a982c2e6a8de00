package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadIATATable reads the static airport->country asset (3-letter IATA code
// to alpha-2 country code). A missing asset is not fatal: airport-based
// country detection just contributes nothing.
func LoadIATATable(path string) map[string]string {
	table, err := readIATATable(path)
	if err != nil {
		log.Printf("IATA table unavailable (%v); airport country lookups disabled", err)
		return map[string]string{}
	}
	log.Printf("Loaded %d airport country mappings from %s", len(table), path)
	return table
}

func readIATATable(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read IATA asset: %w", err)
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse IATA asset: %w", err)
	}
	return table, nil
}
