package auth

import (
	"context"
	"sync"

	"homemate/models"
)

// Gateway is the capability interface over the external identity provider.
// Nothing in this layer stores or verifies credentials itself; every
// operation delegates to the collaborator and fails with utils.AuthError.
//
// The authenticated-user object is process-wide: the gateway is its single
// writer, every screen reads it through CurrentUser or a subscription.
type Gateway interface {
	// Register creates the account and applies the initial profile.
	Register(ctx context.Context, email, password, photoURL, displayName string) (*models.UserProfile, error)
	// SignIn verifies credentials with the provider.
	SignIn(ctx context.Context, email, password string) (*models.UserProfile, error)
	// SignInWithProvider completes a federated (Google) sign-in from the
	// provider-issued ID token.
	SignInWithProvider(ctx context.Context, idToken string) (*models.UserProfile, error)
	// SendPasswordReset asks the provider to mail a reset link.
	SendPasswordReset(ctx context.Context, email string) error
	// SignOut ends the current session.
	SignOut(ctx context.Context) error
	// UpdateProfile applies a partial profile edit to the signed-in user.
	// Email is never mutated through this layer.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error)
	// OnAuthStateChange subscribes to sign-in/out transitions. The callback
	// fires once with the restored session (or nil) when the gateway starts,
	// and again on every later change. The returned function unsubscribes.
	OnAuthStateChange(cb func(*models.UserProfile)) func()
	// CurrentUser returns the signed-in user, or nil.
	CurrentUser() *models.UserProfile
	// Start settles the initial auth state and fires the first notification.
	Start(ctx context.Context)
}

// stateHub implements the shared current-user slot and the subscription
// fan-out common to every Gateway implementation.
type stateHub struct {
	mu      sync.RWMutex
	current *models.UserProfile
	subs    map[int]func(*models.UserProfile)
	nextSub int
}

func newStateHub() *stateHub {
	return &stateHub{subs: make(map[int]func(*models.UserProfile))}
}

func (h *stateHub) CurrentUser() *models.UserProfile {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil
	}
	u := *h.current
	return &u
}

func (h *stateHub) OnAuthStateChange(cb func(*models.UserProfile)) func() {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = cb
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// setCurrent replaces the shared user and notifies every subscriber.
func (h *stateHub) setCurrent(u *models.UserProfile) {
	h.mu.Lock()
	h.current = u
	cbs := make([]func(*models.UserProfile), 0, len(h.subs))
	for _, cb := range h.subs {
		cbs = append(cbs, cb)
	}
	h.mu.Unlock()

	for _, cb := range cbs {
		var copied *models.UserProfile
		if u != nil {
			c := *u
			copied = &c
		}
		cb(copied)
	}
}
