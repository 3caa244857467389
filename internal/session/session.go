// Package session wires the account/session provider to the
// synchronization controller: bounded bootstrap, sign-in/sign-out
// transitions, and teardown of pending timers.
package session

import (
	"context"
)

// Session identifies an authenticated account.
type Session struct {
	AccountID string
	Email     string
}

// Provider is the external account/session source (consumed, not
// reimplemented). OnChange fires on sign-in, sign-out and token refresh.
type Provider interface {
	Current(ctx context.Context) (*Session, error)
	OnChange(fn func(*Session)) (unsubscribe func())
	SignOut(ctx context.Context) error
}
