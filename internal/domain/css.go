package domain

import "time"

// CSS is a regional fund office drawing advances from the central treasury.
type CSS struct {
	ID        string
	Code      string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
