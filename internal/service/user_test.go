package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlkr/booking_api/internal/notification"
)

func TestRegister(t *testing.T) {
	e := newEnv()

	user, err := e.users.Register(context.Background(), "alice@example.com", "Alice")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	events := e.notifier.published()
	require.Len(t, events, 1)
	assert.Equal(t, notification.EventUserRegistered, events[0].Type)
	assert.Equal(t, "alice@example.com", events[0].UserEmail)
}

func TestRegister_MissingField(t *testing.T) {
	e := newEnv()

	_, err := e.users.Register(context.Background(), "", "Alice")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = e.users.Register(context.Background(), "alice@example.com", "")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestRegister_EmailTaken(t *testing.T) {
	e := newEnv()

	_, err := e.users.Register(context.Background(), "alice@example.com", "Alice")
	require.NoError(t, err)

	_, err = e.users.Register(context.Background(), "alice@example.com", "Another Alice")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserGetByID(t *testing.T) {
	e := newEnv()
	user := e.seedUser(t, "alice@example.com")

	found, err := e.users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", found.Email)

	_, err = e.users.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
