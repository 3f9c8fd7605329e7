package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginBindsUser(t *testing.T) {
	s := NewStore()

	token := s.Create()
	require.True(t, s.Valid(token))
	assert.False(t, s.IsAuthenticated(token))

	s.Login(token, "42")

	assert.True(t, s.IsAuthenticated(token))

	userID, ok := s.CurrentUserID(token)
	require.True(t, ok)
	assert.Equal(t, "42", userID)
}

func TestLogoutInvalidatesServerSide(t *testing.T) {
	s := NewStore()

	token := s.Create()
	s.Login(token, "42")

	s.Logout(token)

	assert.False(t, s.Valid(token))
	assert.False(t, s.IsAuthenticated(token))

	_, ok := s.CurrentUserID(token)
	assert.False(t, ok)
}

func TestUnknownTokenIsAnonymous(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Valid("no-such-token"))
	assert.False(t, s.IsAuthenticated("no-such-token"))

	// Writes against a dead token are dropped, not resurrected.
	s.Login("no-such-token", "42")
	assert.False(t, s.IsAuthenticated("no-such-token"))
}

func TestIdleExpiry(t *testing.T) {
	now := time.Now()
	s := NewStore(WithTTL(60*time.Second), WithClock(func() time.Time { return now }))

	token := s.Create()
	s.Login(token, "42")

	now = now.Add(30 * time.Second)
	assert.True(t, s.IsAuthenticated(token))

	// A write resets the idle deadline.
	s.AddFlash(token, "login_errors", "hello")
	now = now.Add(45 * time.Second)
	assert.True(t, s.IsAuthenticated(token))

	now = now.Add(61 * time.Second)
	assert.False(t, s.Valid(token))
	assert.False(t, s.IsAuthenticated(token))
}

func TestFlashIsSingleUse(t *testing.T) {
	s := NewStore()

	token := s.Create()
	s.AddFlash(token, "registration_errors", "Passwords do not match!")
	s.AddFlash(token, "registration_errors", "Email is required!")
	s.AddFlash(token, "secret_errors", "Comment must include atleast 3 characters!")

	flash := s.ConsumeFlash(token)
	require.NotNil(t, flash)
	assert.Equal(t, []string{"Passwords do not match!", "Email is required!"}, flash["registration_errors"])
	assert.Equal(t, []string{"Comment must include atleast 3 characters!"}, flash["secret_errors"])

	assert.Nil(t, s.ConsumeFlash(token))
}

func TestConsumeFlashEmpty(t *testing.T) {
	s := NewStore()

	token := s.Create()
	assert.Nil(t, s.ConsumeFlash(token))
	assert.Nil(t, s.ConsumeFlash("no-such-token"))
}
