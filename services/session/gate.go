// Package session maps the external auth state onto an allow-or-redirect
// decision for protected screens.
package session

import (
	"sync"

	"homemate/models"
	"homemate/services/auth"
)

// State is the gate's view of the authentication collaborator.
type State int

const (
	// StateLoading holds until the collaborator fires its first state
	// notification. No decisions are made while loading.
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Decision is the gate's answer for one protected request.
type Decision struct {
	// Placeholder means the auth state has not settled yet: render a
	// placeholder and issue no redirect.
	Placeholder bool
	// RedirectTo is set when the caller must sign in first; From carries the
	// originally requested location so the caller can return to it.
	RedirectTo string
	From       string
	// User is the signed-in user when the request is allowed.
	User *models.UserProfile
}

// Allowed reports whether the request may proceed to the protected content.
func (d Decision) Allowed() bool {
	return !d.Placeholder && d.RedirectTo == ""
}

// SignInPath is where unauthenticated callers are sent.
const SignInPath = "/auth"

// Gate tracks the collaborator's auth state. It starts in StateLoading and
// settles on the first notification.
type Gate struct {
	mu    sync.RWMutex
	state State
	user  *models.UserProfile
}

func NewGate() *Gate {
	return &Gate{state: StateLoading}
}

// Bind subscribes the gate to the gateway's state changes and returns the
// unsubscribe function.
func (g *Gate) Bind(gw auth.Gateway) func() {
	return gw.OnAuthStateChange(g.Apply)
}

// Apply settles the gate on the given user (nil means signed out).
func (g *Gate) Apply(user *models.UserProfile) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if user == nil {
		g.state = StateUnauthenticated
		g.user = nil
		return
	}
	g.state = StateAuthenticated
	g.user = user
}

// CurrentState returns the gate's state.
func (g *Gate) CurrentState() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Decide answers for a protected request aimed at requestedPath.
func (g *Gate) Decide(requestedPath string) Decision {
	g.mu.RLock()
	defer g.mu.RUnlock()
	switch g.state {
	case StateLoading:
		return Decision{Placeholder: true}
	case StateUnauthenticated:
		return Decision{RedirectTo: SignInPath, From: requestedPath}
	default:
		u := *g.user
		return Decision{User: &u}
	}
}
