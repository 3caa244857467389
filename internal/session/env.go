package session

import (
	"context"
	"os"
	"sync"
)

// EnvProvider is a single-account Provider sourced from the environment.
// It stands in for an external auth service in self-hosted deployments:
// ACCOUNT_ID (and optionally ACCOUNT_EMAIL) select the account.
type EnvProvider struct {
	mu        sync.Mutex
	session   *Session
	callbacks []func(*Session)
}

// NewEnvProvider reads ACCOUNT_ID and ACCOUNT_EMAIL. A missing
// ACCOUNT_ID means no active session.
func NewEnvProvider() *EnvProvider {
	p := &EnvProvider{}
	if id := os.Getenv("ACCOUNT_ID"); id != "" {
		p.session = &Session{AccountID: id, Email: os.Getenv("ACCOUNT_EMAIL")}
	}
	return p
}

func (p *EnvProvider) Current(_ context.Context) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session, nil
}

func (p *EnvProvider) OnChange(fn func(*Session)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callbacks = append(p.callbacks, fn)
	i := len(p.callbacks) - 1
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.callbacks[i] = nil
	}
}

func (p *EnvProvider) SignOut(_ context.Context) error {
	p.mu.Lock()
	p.session = nil
	callbacks := append([]func(*Session){}, p.callbacks...)
	p.mu.Unlock()
	for _, fn := range callbacks {
		if fn != nil {
			fn(nil)
		}
	}
	return nil
}

var _ Provider = (*EnvProvider)(nil)
