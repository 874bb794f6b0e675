package model

import "time"

type Service struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           int       `json:"price"`            // in cents
	DurationMinutes int       `json:"duration_minutes"` // slot length
	CreatedAt       time.Time `json:"created_at"`
}
