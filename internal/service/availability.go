package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vlkr/booking_api/internal/datetime"
	"github.com/vlkr/booking_api/internal/model"
)

// AvailabilityService resolves the bookable slots of a service for a
// concrete date: the weekly template minus the confirmed reservations.
type AvailabilityService struct {
	templateRepo    TemplateStore
	reservationRepo ReservationStore
	logger          *zap.Logger
}

func NewAvailabilityService(
	templateRepo TemplateStore,
	reservationRepo ReservationStore,
	logger *zap.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		templateRepo:    templateRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// AvailableSlots returns the open slots of a service on a date, ordered by
// start time ascending. A day without templates resolves to an empty list,
// not an error. Past dates are not filtered here; only the booking write
// path rejects them.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, serviceID int64, date string) ([]model.Slot, error) {
	day, err := datetime.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	weekday := datetime.Weekday(day)

	templates, err := s.templateRepo.ListEnabled(ctx, serviceID, weekday)
	if err != nil {
		return nil, fmt.Errorf("list enabled templates: %w", err)
	}

	if len(templates) == 0 {
		return []model.Slot{}, nil
	}

	booked, err := s.reservationRepo.ConfirmedStarts(ctx, serviceID, day.Format(datetime.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("get confirmed starts: %w", err)
	}

	slots := make([]model.Slot, 0, len(templates))
	for _, template := range templates {
		if _, taken := booked[template.StartAt]; taken {
			continue
		}
		slots = append(slots, model.Slot{
			StartAt: template.StartAt,
			EndAt:   template.EndAt,
		})
	}

	return slots, nil
}
