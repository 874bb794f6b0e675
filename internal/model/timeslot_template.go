package model

import "time"

// TimeslotTemplate is one recurring weekly bookable window of a service.
// (service_id, weekday, start_at) is unique.
type TimeslotTemplate struct {
	ID        int64     `json:"id"`
	ServiceID int64     `json:"service_id"`
	Weekday   int       `json:"weekday"`  // 0 = Sunday, 6 = Saturday
	StartAt   string    `json:"start_at"` // "HH:MM"
	EndAt     string    `json:"end_at"`   // "HH:MM"
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// Slot is a bookable window resolved for a concrete date.
type Slot struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}
