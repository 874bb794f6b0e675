package service

import "errors"

// Domain errors. Every named failure of the booking flow is one of these;
// anything else that escapes the service layer is an infrastructure error.
var (
	ErrMissingField = errors.New("required field is missing")

	ErrInvalidDate = errors.New("date is not a valid calendar date")

	ErrPastDate = errors.New("date is in the past")

	ErrInvalidClock = errors.New("time is not a valid HH:MM value")

	ErrInvalidWeekday = errors.New("weekday must be between 0 and 6")

	ErrInvalidWindow = errors.New("end time must be after start time")

	ErrServiceNotFound = errors.New("service not found")

	ErrServiceExists = errors.New("service name is already taken")

	ErrTemplateExists = errors.New("timeslot template already exists")

	ErrSlotNotOffered = errors.New("slot is not offered for this service")

	ErrSlotTaken = errors.New("slot is already booked")

	ErrReservationNotFound = errors.New("reservation not found")

	ErrForbidden = errors.New("reservation belongs to another user")

	ErrUserNotFound = errors.New("user not found")

	ErrEmailTaken = errors.New("email is already registered")
)
