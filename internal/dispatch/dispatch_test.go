package dispatch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sajibprobook-creator/lensfocus/internal/dispatch"
	"github.com/sajibprobook-creator/lensfocus/internal/models"
	"github.com/sajibprobook-creator/lensfocus/internal/store/storetest"
	"github.com/sajibprobook-creator/lensfocus/internal/syncer"
)

const testAccount = "acct-1"

func newDispatcher() (*dispatch.Dispatcher, *storetest.Fake, *syncer.Controller) {
	fake := storetest.NewFake()
	ctrl := syncer.NewController(fake)
	return dispatch.New(fake, ctrl), fake, ctrl
}

func TestCreateProjectWritesThenRefreshes(t *testing.T) {
	t.Parallel()

	d, fake, ctrl := newDispatcher()
	ctx := context.Background()

	created, err := d.CreateProject(ctx, testAccount, models.Project{
		Title:  "Wedding",
		Status: models.ProjectBooked,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// The write itself does not patch the snapshot; the refresh does.
	snap := ctrl.Snapshot()
	require.Len(t, snap.Projects, 1)
	require.Equal(t, "Wedding", snap.Projects[0].Title)

	// Exactly one refresh: every collection fetched once.
	require.Equal(t, 1, fake.Count("projects"))
	require.Equal(t, 1, fake.Count("transactions"))
	require.Equal(t, 1, fake.Count("invoices"))
}

func TestCreateKeepsCallerSuppliedID(t *testing.T) {
	t.Parallel()

	d, _, _ := newDispatcher()
	created, err := d.CreateTask(context.Background(), testAccount, models.Task{
		ID:    "task-7",
		Title: "Cull previews",
	})
	require.NoError(t, err)
	require.Equal(t, "task-7", created.ID)
}

func TestCreateTransactionDefaultsCurrency(t *testing.T) {
	t.Parallel()

	d, fake, _ := newDispatcher()
	created, err := d.CreateTransaction(context.Background(), testAccount, models.Transaction{
		Amount: decimal.NewFromInt(500),
		Type:   models.TransactionIncome,
		Date:   "2024-05-01",
	})
	require.NoError(t, err)
	require.Equal(t, models.DefaultCurrency, created.Currency)
	require.Len(t, fake.Transactions, 1)
}

func TestDeleteRefreshesOnce(t *testing.T) {
	t.Parallel()

	d, fake, ctrl := newDispatcher()
	ctx := context.Background()

	created, err := d.CreateClient(ctx, testAccount, models.Client{Name: "Rahim"})
	require.NoError(t, err)
	require.NoError(t, d.DeleteClient(ctx, testAccount, created.ID))

	require.Empty(t, ctrl.Snapshot().Clients)
	require.Equal(t, 2, fake.Count("clients"))
}

// failingStore wraps the fake to make one insert fail.
type failingStore struct {
	*storetest.Fake
	insertErr error
}

func (s *failingStore) InsertEvent(ctx context.Context, accountID string, ev models.LifeEvent) (models.LifeEvent, error) {
	return models.LifeEvent{}, s.insertErr
}

func TestFailedWriteDoesNotRefresh(t *testing.T) {
	t.Parallel()

	fake := storetest.NewFake()
	failing := &failingStore{Fake: fake, insertErr: errors.New("insert rejected")}
	ctrl := syncer.NewController(failing)
	d := dispatch.New(failing, ctrl)

	_, err := d.CreateEvent(context.Background(), testAccount, models.LifeEvent{Title: "Shoot"})
	require.Error(t, err)
	require.Equal(t, 0, fake.Count("events"))
}

func TestUpdateSavingsGoal(t *testing.T) {
	t.Parallel()

	d, _, ctrl := newDispatcher()
	ctx := context.Background()

	goal, err := d.CreateSavingsGoal(ctx, testAccount, models.SavingsGoal{
		Name:   "New lens",
		Target: decimal.NewFromInt(80000),
	})
	require.NoError(t, err)

	goal.Current = decimal.NewFromInt(15000)
	require.NoError(t, d.UpdateSavingsGoal(ctx, testAccount, goal))

	snap := ctrl.Snapshot()
	require.Len(t, snap.SavingsGoals, 1)
	require.True(t, snap.SavingsGoals[0].Current.Equal(decimal.NewFromInt(15000)))
}

func TestSaveProfileCreatesThenUpdates(t *testing.T) {
	t.Parallel()

	d, fake, ctrl := newDispatcher()
	ctx := context.Background()

	profile := models.Profile{ID: testAccount, OwnerName: "Sajib", StudioName: "Moment Chronicles"}
	require.NoError(t, d.SaveProfile(ctx, profile))
	require.NotNil(t, fake.Profile)

	profile.StudioName = "Moment Chronicles Studio"
	require.NoError(t, d.SaveProfile(ctx, profile))

	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Profile)
	require.Equal(t, "Moment Chronicles Studio", snap.Profile.StudioName)
}

func TestUpdateLogoRefreshes(t *testing.T) {
	t.Parallel()

	d, fake, ctrl := newDispatcher()
	ctx := context.Background()

	require.NoError(t, d.SaveProfile(ctx, models.Profile{ID: testAccount, OwnerName: "Sajib"}))
	require.NoError(t, d.UpdateLogo(ctx, testAccount, "https://cdn.example.com/logo.png"))

	require.Equal(t, "https://cdn.example.com/logo.png", fake.Profile.LogoURL)
	require.Equal(t, "https://cdn.example.com/logo.png", ctrl.Snapshot().Profile.LogoURL)
}
