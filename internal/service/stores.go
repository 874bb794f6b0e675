package service

import (
	"context"

	"github.com/vlkr/booking_api/internal/model"
	"github.com/vlkr/booking_api/internal/notification"
)

// Store interfaces implemented by the pgx repositories. The services depend
// on these so tests can swap in in-memory fakes.

type ServiceStore interface {
	Create(ctx context.Context, service *model.Service) error
	GetByID(ctx context.Context, id int64) (*model.Service, error)
	List(ctx context.Context) ([]*model.Service, error)
}

type TemplateStore interface {
	Create(ctx context.Context, template *model.TimeslotTemplate) error
	ListEnabled(ctx context.Context, serviceID int64, weekday int) ([]*model.TimeslotTemplate, error)
	GetEnabled(ctx context.Context, serviceID int64, weekday int, startAt string) (*model.TimeslotTemplate, error)
}

type ReservationStore interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	GetByID(ctx context.Context, id int64) (*model.Reservation, error)
	ConfirmedStarts(ctx context.Context, serviceID int64, day string) (map[string]struct{}, error)
	HasConfirmed(ctx context.Context, serviceID int64, day, startAt string) (bool, error)
	Cancel(ctx context.Context, id int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*model.Reservation, error)
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// Publisher is the notification sink boundary; delivery is fire-and-forget.
type Publisher interface {
	Publish(event notification.Event)
}
