package session_test

import (
	"testing"

	"homemate/models"
	"homemate/services/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateStartsLoading(t *testing.T) {
	gate := session.NewGate()
	assert.Equal(t, session.StateLoading, gate.CurrentState())

	d := gate.Decide("/my-bookings")
	assert.True(t, d.Placeholder)
	assert.Empty(t, d.RedirectTo, "loading must not redirect")
	assert.False(t, d.Allowed())
}

func TestGateRedirectsWhenSignedOut(t *testing.T) {
	gate := session.NewGate()
	gate.Apply(nil)
	assert.Equal(t, session.StateUnauthenticated, gate.CurrentState())

	d := gate.Decide("/my-services")
	assert.Equal(t, session.SignInPath, d.RedirectTo)
	assert.Equal(t, "/my-services", d.From, "redirect must carry the requested path")
	assert.False(t, d.Allowed())
}

func TestGateAllowsSignedInUser(t *testing.T) {
	gate := session.NewGate()
	gate.Apply(&models.UserProfile{UID: "u1", Email: "sam@example.com"})

	d := gate.Decide("/my-bookings")
	assert.True(t, d.Allowed())
	require.NotNil(t, d.User)
	assert.Equal(t, "sam@example.com", d.User.Email)
}

func TestGateSettlesOnLatestNotification(t *testing.T) {
	gate := session.NewGate()
	gate.Apply(&models.UserProfile{UID: "u1"})
	gate.Apply(nil)

	d := gate.Decide("/my-bookings")
	assert.Equal(t, session.SignInPath, d.RedirectTo)
	assert.Nil(t, d.User)
}

func TestGateDecisionUserIsACopy(t *testing.T) {
	gate := session.NewGate()
	gate.Apply(&models.UserProfile{UID: "u1", DisplayName: "Sam"})

	d := gate.Decide("/")
	require.NotNil(t, d.User)
	d.User.DisplayName = "Mutated"

	again := gate.Decide("/")
	assert.Equal(t, "Sam", again.User.DisplayName)
}
