// Package models defines the core data types shared across the dataset
// builder: query definitions, raw result sets and the dashboard document.
package models

// Query represents a single named SQL statement executed against the
// analytical store. Definitions are fixed at build time.
type Query struct {
	Name        string
	Description string
	SQL         string
}
