package models

import "time"

// Package is a membership plan definition.
// Sessions, when set, overrides the 1-day-=-1-session default at
// assignment time.
type Package struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" binding:"required"`
	DurationDays int       `json:"duration" db:"duration_days" binding:"required"`
	Price        float64   `json:"price" db:"price"`
	Sessions     *int      `json:"sessions,omitempty" db:"sessions"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
