package model

import "time"

// Company is a registered organisation with its append-only context notes.
// Documents is only loaded on detail reads.
type Company struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Context   []string   `json:"context"`
	Documents []Document `json:"documents"`
	CreatedAt time.Time  `json:"created_at"`
}

// CompanySummary is the list projection of a Company.
type CompanySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
