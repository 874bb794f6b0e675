package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vlkr/booking_api/internal/datetime"
	"github.com/vlkr/booking_api/internal/model"
)

type env struct {
	store        *memStore
	notifier     *stubNotifier
	booking      *BookingService
	availability *AvailabilityService
	catalog      *CatalogService
	users        *UserService
}

func newEnv() *env {
	store := newMemStore()
	notifier := &stubNotifier{}
	logger := zap.NewNop()

	return &env{
		store:        store,
		notifier:     notifier,
		booking:      NewBookingService(store, templateStore{store}, reservationStore{store}, userStore{store}, notifier, logger),
		availability: NewAvailabilityService(templateStore{store}, reservationStore{store}, logger),
		catalog:      NewCatalogService(store, templateStore{store}, logger),
		users:        NewUserService(userStore{store}, notifier, logger),
	}
}

func (e *env) seedUser(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Name: "Test User"}
	require.NoError(t, userStore{e.store}.Create(context.Background(), user))
	return user
}

func (e *env) seedService(t *testing.T, name string) *model.Service {
	t.Helper()
	service := &model.Service{Name: name, Price: 2500, DurationMinutes: 60}
	require.NoError(t, e.store.Create(context.Background(), service))
	return service
}

func (e *env) seedTemplate(t *testing.T, serviceID int64, weekday int, startAt, endAt string) *model.TimeslotTemplate {
	t.Helper()
	template := &model.TimeslotTemplate{
		ServiceID: serviceID,
		Weekday:   weekday,
		StartAt:   startAt,
		EndAt:     endAt,
		Enabled:   true,
	}
	require.NoError(t, templateStore{e.store}.Create(context.Background(), template))
	return template
}

// futureDate returns the first date strictly after today that lands on the
// given weekday.
func futureDate(weekday int) string {
	day := datetime.Today().AddDate(0, 0, 1)
	for datetime.Weekday(day) != weekday {
		day = day.AddDate(0, 0, 1)
	}
	return day.Format(datetime.DateLayout)
}
