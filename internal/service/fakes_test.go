package service

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vlkr/booking_api/internal/model"
	"github.com/vlkr/booking_api/internal/notification"
)

// memStore is an in-memory stand-in for the pgx repositories. It mimics the
// store's unique constraints, including the partial confirmed-slot index,
// under one mutex so the booking race property is testable.
type memStore struct {
	mu           sync.Mutex
	nextID       int64
	services     map[int64]*model.Service
	templates    []*model.TimeslotTemplate
	users        map[int64]*model.User
	reservations map[int64]*model.Reservation
}

func newMemStore() *memStore {
	return &memStore{
		services:     make(map[int64]*model.Service),
		users:        make(map[int64]*model.User),
		reservations: make(map[int64]*model.Reservation),
	}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) Create(ctx context.Context, service *model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.services {
		if existing.Name == service.Name {
			return uniqueViolation()
		}
	}

	service.ID = s.id()
	copied := *service
	s.services[service.ID] = &copied
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[id]
	if !ok {
		return nil, nil
	}
	copied := *service
	return &copied, nil
}

func (s *memStore) List(ctx context.Context) ([]*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var services []*model.Service
	for _, service := range s.services {
		copied := *service
		services = append(services, &copied)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}

// renameService mutates a stored service, used to verify the reservation's
// name snapshot is not a live reference.
func (s *memStore) renameService(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[id].Name = name
}

type templateStore struct{ *memStore }

func (s templateStore) Create(ctx context.Context, template *model.TimeslotTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.templates {
		if existing.ServiceID == template.ServiceID &&
			existing.Weekday == template.Weekday &&
			existing.StartAt == template.StartAt {
			return uniqueViolation()
		}
	}

	template.ID = s.id()
	copied := *template
	s.templates = append(s.templates, &copied)
	return nil
}

func (s templateStore) ListEnabled(ctx context.Context, serviceID int64, weekday int) ([]*model.TimeslotTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var templates []*model.TimeslotTemplate
	for _, template := range s.templates {
		if template.ServiceID == serviceID && template.Weekday == weekday && template.Enabled {
			copied := *template
			templates = append(templates, &copied)
		}
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].StartAt < templates[j].StartAt })
	return templates, nil
}

func (s templateStore) GetEnabled(ctx context.Context, serviceID int64, weekday int, startAt string) (*model.TimeslotTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, template := range s.templates {
		if template.ServiceID == serviceID && template.Weekday == weekday &&
			template.StartAt == startAt && template.Enabled {
			copied := *template
			return &copied, nil
		}
	}
	return nil, nil
}

type reservationStore struct{ *memStore }

func (s reservationStore) Create(ctx context.Context, reservation *model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reservation.Status == model.ReservationStatusConfirmed {
		for _, existing := range s.reservations {
			if existing.Status == model.ReservationStatusConfirmed &&
				existing.ServiceID == reservation.ServiceID &&
				existing.Day == reservation.Day &&
				existing.StartAt == reservation.StartAt {
				return uniqueViolation()
			}
		}
	}

	reservation.ID = s.id()
	copied := *reservation
	s.reservations[reservation.ID] = &copied
	return nil
}

func (s reservationStore) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return nil, nil
	}
	copied := *reservation
	return &copied, nil
}

func (s reservationStore) ConfirmedStarts(ctx context.Context, serviceID int64, day string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	starts := make(map[string]struct{})
	for _, reservation := range s.reservations {
		if reservation.Status == model.ReservationStatusConfirmed &&
			reservation.ServiceID == serviceID && reservation.Day == day {
			starts[reservation.StartAt] = struct{}{}
		}
	}
	return starts, nil
}

func (s reservationStore) HasConfirmed(ctx context.Context, serviceID int64, day, startAt string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, reservation := range s.reservations {
		if reservation.Status == model.ReservationStatusConfirmed &&
			reservation.ServiceID == serviceID &&
			reservation.Day == day && reservation.StartAt == startAt {
			return true, nil
		}
	}
	return false, nil
}

func (s reservationStore) Cancel(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[id]
	if !ok || reservation.Status != model.ReservationStatusConfirmed {
		return false, nil
	}
	reservation.Status = model.ReservationStatusCancelled
	return true, nil
}

func (s reservationStore) ListByUser(ctx context.Context, userID int64) ([]*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reservations []*model.Reservation
	for _, reservation := range s.reservations {
		if reservation.UserID == userID {
			copied := *reservation
			reservations = append(reservations, &copied)
		}
	}
	sort.Slice(reservations, func(i, j int) bool {
		if reservations[i].Day != reservations[j].Day {
			return reservations[i].Day > reservations[j].Day
		}
		return reservations[i].StartAt > reservations[j].StartAt
	})
	return reservations, nil
}

type userStore struct{ *memStore }

func (s userStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return uniqueViolation()
		}
	}

	user.ID = s.id()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

// stubNotifier records published events synchronously.
type stubNotifier struct {
	mu     sync.Mutex
	events []notification.Event
}

func (n *stubNotifier) Publish(event notification.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *stubNotifier) published() []notification.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification.Event(nil), n.events...)
}
