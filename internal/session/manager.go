package session

import (
	"context"
	"sync"
	"time"

	"github.com/sajibprobook-creator/lensfocus/internal/logger"
	"github.com/sajibprobook-creator/lensfocus/internal/syncer"
)

// State is the manager lifecycle: Init until bootstrap settles, Active
// while an account is signed in, back to Init after reset.
type State int

const (
	StateInit State = iota
	StateActive
)

// Manager owns the session lifecycle for one application instance.
type Manager struct {
	provider    Provider
	ctrl        *syncer.Controller
	bootTimeout time.Duration

	// onSlowConnection surfaces the manual "reset session" recovery action
	// when the bootstrap session check exceeds its bound. May be nil.
	onSlowConnection func()

	mu           sync.Mutex
	state        State
	current      *Session
	troubleshoot *oneShot
	unsubscribe  func()
}

// NewManager creates a session manager. bootTimeout bounds the initial
// session check; past it the manager proceeds as unauthenticated.
func NewManager(provider Provider, ctrl *syncer.Controller, bootTimeout time.Duration, onSlowConnection func()) *Manager {
	return &Manager{
		provider:         provider,
		ctrl:             ctrl,
		bootTimeout:      bootTimeout,
		onSlowConnection: onSlowConnection,
	}
}

// Bootstrap performs the time-boxed initial session check and, when a
// session exists, runs the first full refresh. The session check races a
// fixed timeout; whichever settles first wins and the loser is abandoned.
// Bootstrap never blocks past the bound.
func (m *Manager) Bootstrap(ctx context.Context) *Session {
	checkCtx, cancel := context.WithTimeout(ctx, m.bootTimeout)
	defer cancel()

	type result struct {
		sess *Session
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		sess, err := m.provider.Current(checkCtx)
		ch <- result{sess: sess, err: err}
	}()

	var sess *Session
	select {
	case res := <-ch:
		if res.err != nil {
			logger.Log.Warn().Err(res.err).Msg("Session check failed, proceeding unauthenticated")
		} else {
			sess = res.sess
		}
	case <-checkCtx.Done():
		logger.Log.Warn().Dur("timeout", m.bootTimeout).Msg("Session check timed out, proceeding unauthenticated")
		if m.onSlowConnection != nil {
			m.onSlowConnection()
		}
	}

	if sess != nil {
		m.activate(ctx, sess)
	}

	m.mu.Lock()
	m.unsubscribe = m.provider.OnChange(func(next *Session) {
		m.handleChange(ctx, next)
	})
	m.mu.Unlock()

	return sess
}

// handleChange reacts to provider session transitions: sign-in (or token
// refresh) triggers a full refresh, sign-out resets the snapshot.
func (m *Manager) handleChange(ctx context.Context, next *Session) {
	if next != nil {
		m.activate(ctx, next)
		return
	}
	m.reset()
}

func (m *Manager) activate(ctx context.Context, sess *Session) {
	m.mu.Lock()
	m.current = sess
	m.state = StateActive
	if m.troubleshoot != nil {
		m.troubleshoot.Stop()
		m.troubleshoot = nil
	}
	m.mu.Unlock()

	logger.Log.Info().
		Str("account_hash", logger.HashAccountID(sess.AccountID)).
		Msg("Session active, refreshing snapshot")
	m.ctrl.RefreshAll(ctx, sess.AccountID)
}

func (m *Manager) reset() {
	m.mu.Lock()
	m.current = nil
	m.state = StateInit
	if m.troubleshoot != nil {
		m.troubleshoot.Stop()
		m.troubleshoot = nil
	}
	m.mu.Unlock()

	m.ctrl.Reset()
	logger.Log.Info().Msg("Session cleared, snapshot reset")
}

// ArmTroubleshoot schedules a hint (e.g. the recovery banner) after d.
// Stopped automatically when the session activates, resets or closes.
func (m *Manager) ArmTroubleshoot(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.troubleshoot != nil {
		m.troubleshoot.Stop()
	}
	m.troubleshoot = after(d, fn)
}

// SignOut signs the account out of the provider and resets local state.
func (m *Manager) SignOut(ctx context.Context) error {
	err := m.provider.SignOut(ctx)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Provider sign-out failed")
	}
	m.reset()
	return err
}

// Close tears the manager down: unsubscribes from session changes and
// stops any pending timers so nothing fires after teardown.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.troubleshoot != nil {
		m.troubleshoot.Stop()
		m.troubleshoot = nil
	}
	unsub := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Current returns the active session, if any.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// State returns the lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
