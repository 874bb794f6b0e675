// Package notification delivers booking and registration events to external
// sinks. Delivery is best-effort: sink failures are logged and never reach
// the caller.
package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventUserRegistered   = "user_registered"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
)

// Event is the payload handed to every sink.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	UserEmail   string    `json:"user_email"`
	ServiceName string    `json:"service_name,omitempty"`
	Day         string    `json:"day,omitempty"`
	StartAt     string    `json:"start_at,omitempty"`
	Status      string    `json:"status,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Sink receives one event.
type Sink interface {
	Send(ctx context.Context, event Event) error
}

type Notifier struct {
	sinks   []Sink
	logger  *zap.Logger
	timeout time.Duration
}

func NewNotifier(logger *zap.Logger, sinks ...Sink) *Notifier {
	return &Notifier{
		sinks:   sinks,
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// Publish hands the event to all sinks on a background goroutine. It never
// blocks the caller and never reports an error.
func (n *Notifier) Publish(event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		for _, sink := range n.sinks {
			if err := sink.Send(ctx, event); err != nil {
				n.logger.Warn("Notification sink failed",
					zap.String("event_id", event.ID),
					zap.String("event_type", event.Type),
					zap.Error(err),
				)
			}
		}
	}()
}
