package model

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	ServiceID int64 `json:"service_id"`
	// Snapshot of the service name at booking time, survives a later rename.
	ServiceName string            `json:"service_name"`
	Day         string            `json:"day"`      // "2006-01-02"
	StartAt     string            `json:"start_at"` // "HH:MM"
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
