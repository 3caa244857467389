package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
	"github.com/sajibprobook-creator/lensfocus/internal/session"
	"github.com/sajibprobook-creator/lensfocus/internal/store/storetest"
	"github.com/sajibprobook-creator/lensfocus/internal/syncer"
)

type fakeProvider struct {
	mu        sync.Mutex
	session   *session.Session
	err       error
	delay     time.Duration
	callbacks []func(*session.Session)
	signedOut bool
}

func (f *fakeProvider) Current(ctx context.Context) (*session.Session, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, f.err
}

func (f *fakeProvider) OnChange(fn func(*session.Session)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callbacks = append(f.callbacks, fn)
	return func() {}
}

func (f *fakeProvider) SignOut(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signedOut = true
	f.session = nil
	return nil
}

func (f *fakeProvider) fire(sess *session.Session) {
	f.mu.Lock()
	callbacks := append([]func(*session.Session){}, f.callbacks...)
	f.session = sess
	f.mu.Unlock()
	for _, fn := range callbacks {
		fn(sess)
	}
}

func TestBootstrapWithSessionRefreshes(t *testing.T) {
	t.Parallel()
	fake := storetest.NewFake()
	fake.Profile = &models.Profile{ID: "acct-1", OwnerName: "Sajib"}
	ctrl := syncer.NewController(fake)
	provider := &fakeProvider{session: &session.Session{AccountID: "acct-1"}}
	mgr := session.NewManager(provider, ctrl, time.Second, nil)
	defer mgr.Close()

	sess := mgr.Bootstrap(context.Background())

	require.NotNil(t, sess)
	require.Equal(t, "acct-1", sess.AccountID)
	require.Equal(t, session.StateActive, mgr.State())
	require.Equal(t, 1, fake.Count("projects"))
	require.NotNil(t, ctrl.Snapshot().Profile)
}

func TestBootstrapTimesOutAndProceedsUnauthenticated(t *testing.T) {
	t.Parallel()
	ctrl := syncer.NewController(storetest.NewFake())
	provider := &fakeProvider{
		session: &session.Session{AccountID: "acct-1"},
		delay:   5 * time.Second,
	}
	slowNotified := false
	mgr := session.NewManager(provider, ctrl, 50*time.Millisecond, func() { slowNotified = true })
	defer mgr.Close()

	start := time.Now()
	sess := mgr.Bootstrap(context.Background())

	require.Nil(t, sess)
	require.Less(t, time.Since(start), time.Second, "bootstrap must not block past its bound")
	require.True(t, slowNotified)
	require.Equal(t, session.StateInit, mgr.State())
}

func TestBootstrapProviderErrorIsNonFatal(t *testing.T) {
	t.Parallel()
	ctrl := syncer.NewController(storetest.NewFake())
	provider := &fakeProvider{err: errors.New("auth service unavailable")}
	mgr := session.NewManager(provider, ctrl, time.Second, nil)
	defer mgr.Close()

	sess := mgr.Bootstrap(context.Background())
	require.Nil(t, sess)
	require.Equal(t, session.StateInit, mgr.State())
}

func TestSignInChangeTriggersRefresh(t *testing.T) {
	t.Parallel()
	fake := storetest.NewFake()
	ctrl := syncer.NewController(fake)
	provider := &fakeProvider{}
	mgr := session.NewManager(provider, ctrl, time.Second, nil)
	defer mgr.Close()

	require.Nil(t, mgr.Bootstrap(context.Background()))
	require.Equal(t, 0, fake.Count("projects"))

	provider.fire(&session.Session{AccountID: "acct-9"})

	require.Equal(t, session.StateActive, mgr.State())
	require.Equal(t, 1, fake.Count("projects"))
}

func TestSignOutResetsSnapshot(t *testing.T) {
	t.Parallel()
	fake := storetest.NewFake()
	fake.Tasks = []models.Task{{ID: "tk1", Title: "Edit", Status: models.TaskPending}}
	ctrl := syncer.NewController(fake)
	provider := &fakeProvider{session: &session.Session{AccountID: "acct-1"}}
	mgr := session.NewManager(provider, ctrl, time.Second, nil)
	defer mgr.Close()

	mgr.Bootstrap(context.Background())
	require.Len(t, ctrl.Snapshot().Tasks, 1)

	require.NoError(t, mgr.SignOut(context.Background()))

	require.True(t, provider.signedOut)
	require.Nil(t, mgr.Current())
	require.Empty(t, ctrl.Snapshot().Tasks)
	require.Equal(t, session.StateInit, mgr.State())
}

func TestTroubleshootTimerIsInertAfterTeardown(t *testing.T) {
	t.Parallel()
	ctrl := syncer.NewController(storetest.NewFake())
	provider := &fakeProvider{}
	mgr := session.NewManager(provider, ctrl, time.Second, nil)

	firedFlag := false
	mgr.ArmTroubleshoot(30*time.Millisecond, func() { firedFlag = true })
	mgr.Close()

	time.Sleep(80 * time.Millisecond)
	require.False(t, firedFlag, "stopped timer must not fire after teardown")
}
