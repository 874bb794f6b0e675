package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vlkr/booking_api/internal/datetime"
	"github.com/vlkr/booking_api/internal/model"
	"github.com/vlkr/booking_api/internal/notification"
	"github.com/vlkr/booking_api/internal/repository/base"
)

// BookingService commits and cancels reservations. The confirmed-slot
// pre-check is only a fast rejection; the partial unique index in the
// reservation store is what actually serializes concurrent attempts.
type BookingService struct {
	serviceRepo     ServiceStore
	templateRepo    TemplateStore
	reservationRepo ReservationStore
	userRepo        UserStore
	notifier        Publisher
	logger          *zap.Logger

	today func() time.Time
}

func NewBookingService(
	serviceRepo ServiceStore,
	templateRepo TemplateStore,
	reservationRepo ReservationStore,
	userRepo UserStore,
	notifier Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		serviceRepo:     serviceRepo,
		templateRepo:    templateRepo,
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		logger:          logger,
		today:           datetime.Today,
	}
}

// CreateBooking books one slot for a user. The date comparison is date-only,
// so a booking for today is accepted even if the slot's time of day has
// already passed.
func (s *BookingService) CreateBooking(ctx context.Context, userID, serviceID int64, date, startAt string) (*model.Reservation, error) {
	if serviceID == 0 || date == "" || startAt == "" {
		return nil, ErrMissingField
	}

	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	day, err := datetime.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if day.Before(s.today()) {
		return nil, ErrPastDate
	}

	// An unparseable time cannot match any template.
	start, err := datetime.ParseClock(startAt)
	if err != nil {
		return nil, ErrSlotNotOffered
	}

	weekday := datetime.Weekday(day)

	template, err := s.templateRepo.GetEnabled(ctx, serviceID, weekday, start)
	if err != nil {
		return nil, fmt.Errorf("get enabled template: %w", err)
	}
	if template == nil {
		return nil, ErrSlotNotOffered
	}

	dayStr := day.Format(datetime.DateLayout)

	// Fast-path rejection. Two requests can race past this check, the
	// unique index below is the authoritative guard.
	taken, err := s.reservationRepo.HasConfirmed(ctx, serviceID, dayStr, start)
	if err != nil {
		return nil, fmt.Errorf("check confirmed reservation: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	reservation := &model.Reservation{
		UserID:      userID,
		ServiceID:   serviceID,
		ServiceName: svc.Name,
		Day:         dayStr,
		StartAt:     start,
		Status:      model.ReservationStatusConfirmed,
	}

	err = s.reservationRepo.Create(ctx, reservation)
	if err != nil {
		if base.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("Reservation created",
		zap.Int64("reservation_id", reservation.ID),
		zap.Int64("user_id", userID),
		zap.Int64("service_id", serviceID),
		zap.String("day", dayStr),
		zap.String("start_at", start),
	)

	s.publishEvent(ctx, notification.EventBookingConfirmed, reservation)

	return reservation, nil
}

// CancelBooking flips the owner's reservation to cancelled, freeing the
// slot immediately. Cancelling an already-cancelled reservation is a no-op.
func (s *BookingService) CancelBooking(ctx context.Context, userID, reservationID int64) error {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return ErrReservationNotFound
	}

	if reservation.UserID != userID {
		return ErrForbidden
	}

	changed, err := s.reservationRepo.Cancel(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	if !changed {
		// Already cancelled, nothing to do.
		return nil
	}

	reservation.Status = model.ReservationStatusCancelled

	s.logger.Info("Reservation cancelled",
		zap.Int64("reservation_id", reservationID),
		zap.Int64("user_id", userID),
	)

	s.publishEvent(ctx, notification.EventBookingCancelled, reservation)

	return nil
}

// ListReservations returns the user's reservations, newest first.
func (s *BookingService) ListReservations(ctx context.Context, userID int64) ([]*model.Reservation, error) {
	return s.reservationRepo.ListByUser(ctx, userID)
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, reservation *model.Reservation) {
	var email string
	user, err := s.userRepo.GetByID(ctx, reservation.UserID)
	if err != nil {
		s.logger.Warn("Lookup user for notification failed",
			zap.Int64("user_id", reservation.UserID),
			zap.Error(err),
		)
	} else if user != nil {
		email = user.Email
	}

	s.notifier.Publish(notification.Event{
		Type:        eventType,
		UserEmail:   email,
		ServiceName: reservation.ServiceName,
		Day:         reservation.Day,
		StartAt:     reservation.StartAt,
		Status:      string(reservation.Status),
	})
}
