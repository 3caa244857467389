package syncer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
	"github.com/sajibprobook-creator/lensfocus/internal/store/storetest"
	"github.com/sajibprobook-creator/lensfocus/internal/syncer"
)

const testAccount = "6dbd0b63-1b88-4b53-9f53-7f1b3f7f2a10"

func seededFake() *storetest.Fake {
	fake := storetest.NewFake()
	fake.Profile = &models.Profile{ID: testAccount, OwnerName: "Sajib", StudioName: "Moment Chronicles"}
	fake.Projects = []models.Project{
		{ID: "pr1", Title: "Wedding", Status: models.ProjectBooked, TotalValue: decimal.NewFromInt(50000), Payments: []models.Payment{}},
	}
	fake.Transactions = []models.Transaction{
		{ID: "tr1", Amount: decimal.NewFromInt(100), Type: models.TransactionIncome, Category: "Shoot", Date: "2024-05-03", Currency: "BDT"},
	}
	fake.Tasks = []models.Task{
		{ID: "tk1", Title: "Edit album", Deadline: "2024-05-20", Status: models.TaskPending, Priority: models.PriorityHigh},
	}
	fake.Events = []models.LifeEvent{
		{ID: "ev1", Title: "Delivery", Date: "2024-05-25", Time: "10:00"},
	}
	fake.Clients = []models.Client{{ID: "cl1", Name: "Anika", Category: models.ClientActive}}
	fake.Professionals = []models.Professional{{ID: "pf1", Name: "Karim", Role: "Editor", DailyRate: decimal.NewFromInt(5000)}}
	fake.SavingsGoals = []models.SavingsGoal{{ID: "sv1", Name: "New lens", Target: decimal.NewFromInt(90000), Current: decimal.NewFromInt(20000)}}
	fake.Invoices = []models.SavedInvoice{{ID: "in1", Number: "INV-1", Total: decimal.NewFromInt(50000), Paid: decimal.NewFromInt(30000), Items: []models.InvoiceItem{}}}
	return fake
}

func TestRefreshAllPublishesEveryCollection(t *testing.T) {
	t.Parallel()
	fake := seededFake()
	ctrl := syncer.NewController(fake)

	ctrl.RefreshAll(context.Background(), testAccount)

	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Profile)
	require.Equal(t, "Moment Chronicles", snap.Profile.StudioName)
	require.Len(t, snap.Projects, 1)
	require.Len(t, snap.Transactions, 1)
	require.Len(t, snap.Tasks, 1)
	require.Len(t, snap.Events, 1)
	require.Len(t, snap.Clients, 1)
	require.Len(t, snap.Professionals, 1)
	require.Len(t, snap.SavingsGoals, 1)
	require.Len(t, snap.Invoices, 1)
	require.False(t, ctrl.Degraded())
	require.False(t, ctrl.LastSync().IsZero())
}

func TestRefreshAllIsIdempotent(t *testing.T) {
	t.Parallel()
	fake := seededFake()
	ctrl := syncer.NewController(fake)

	ctrl.RefreshAll(context.Background(), testAccount)
	first := ctrl.Snapshot()
	ctrl.RefreshAll(context.Background(), testAccount)
	second := ctrl.Snapshot()

	require.Equal(t, first, second)
}

func TestFailedFetchIsIsolated(t *testing.T) {
	t.Parallel()
	fake := seededFake()
	ctrl := syncer.NewController(fake)

	ctrl.RefreshAll(context.Background(), testAccount)

	// Remote transactions change but their fetch now fails; every other
	// collection must still pick up its new remote value.
	fake.Transactions = nil
	fake.Tasks = append(fake.Tasks, models.Task{ID: "tk2", Title: "Backup cards", Status: models.TaskPending})
	fake.SetError("transactions", errors.New("connection reset"))

	ctrl.RefreshAll(context.Background(), testAccount)

	snap := ctrl.Snapshot()
	require.Len(t, snap.Transactions, 1, "failed fetch must keep the previous value, not clear it")
	require.Equal(t, "tr1", snap.Transactions[0].ID)
	require.Len(t, snap.Tasks, 2)
	require.True(t, ctrl.Degraded())
}

func TestDegradedFlagClearsOnNextSuccessfulRefresh(t *testing.T) {
	t.Parallel()
	fake := seededFake()
	ctrl := syncer.NewController(fake)

	fake.SetError("clients", errors.New("timeout"))
	ctrl.RefreshAll(context.Background(), testAccount)
	require.True(t, ctrl.Degraded())

	fake.SetError("clients", nil)
	ctrl.RefreshAll(context.Background(), testAccount)
	require.False(t, ctrl.Degraded())
}

func TestConcurrentRefreshIsDropped(t *testing.T) {
	t.Parallel()
	fake := seededFake()
	ctrl := syncer.NewController(fake)

	gate := fake.Gate("transactions")

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctrl.RefreshAll(context.Background(), testAccount)
	}()

	// Wait until the first refresh is inside its transactions fetch.
	require.Eventually(t, func() bool {
		return fake.Count("transactions") == 1
	}, time.Second, time.Millisecond)

	// Second call must be a no-op: dropped, not queued.
	ctrl.RefreshAll(context.Background(), testAccount)
	require.Equal(t, 1, fake.Count("projects"))

	close(gate)
	<-done

	require.Equal(t, 1, fake.Count("projects"))
	require.Equal(t, 1, fake.Count("transactions"))
	snap := ctrl.Snapshot()
	require.Len(t, snap.Projects, 1)
}

func TestProfileErrorIsToleratedAndLogged(t *testing.T) {
	t.Parallel()
	fake := seededFake()
	ctrl := syncer.NewController(fake)
	ctrl.RefreshAll(context.Background(), testAccount)

	fake.SetError("profile", errors.New("transport failure"))
	ctrl.RefreshAll(context.Background(), testAccount)

	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Profile, "previous profile stays in place")
	require.True(t, ctrl.Degraded())
}

func TestMissingProfileIsNoData(t *testing.T) {
	t.Parallel()
	fake := seededFake()
	fake.Profile = nil
	ctrl := syncer.NewController(fake)

	ctrl.RefreshAll(context.Background(), testAccount)

	require.Nil(t, ctrl.Snapshot().Profile)
	require.False(t, ctrl.Degraded())
}

func TestReset(t *testing.T) {
	t.Parallel()
	fake := seededFake()
	ctrl := syncer.NewController(fake)
	ctrl.RefreshAll(context.Background(), testAccount)
	ctrl.SetBudgetLimit("Travel", decimal.NewFromInt(1000))

	ctrl.Reset()

	snap := ctrl.Snapshot()
	require.Nil(t, snap.Profile)
	require.Empty(t, snap.Projects)
	require.Empty(t, snap.Transactions)
	require.Empty(t, snap.Tasks)
	require.Empty(t, snap.Events)
	require.Empty(t, snap.Clients)
	require.Empty(t, snap.Professionals)
	require.Empty(t, snap.SavingsGoals)
	require.Empty(t, snap.Invoices)
	require.Empty(t, snap.Budgets)
	require.True(t, ctrl.LastSync().IsZero())

	// No fetches happen during reset.
	require.Equal(t, 1, fake.Count("projects"))
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()
	fake := seededFake()
	ctrl := syncer.NewController(fake)
	ctrl.RefreshAll(context.Background(), testAccount)

	snap := ctrl.Snapshot()
	snap.Projects[0].Title = "mutated"
	snap.Transactions[0].Amount = decimal.NewFromInt(-1)

	fresh := ctrl.Snapshot()
	require.Equal(t, "Wedding", fresh.Projects[0].Title)
	require.True(t, fresh.Transactions[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestSetBudgetLimit(t *testing.T) {
	t.Parallel()
	ctrl := syncer.NewController(storetest.NewFake())

	ctrl.SetBudgetLimit("Travel", decimal.NewFromInt(5000))
	ctrl.SetBudgetLimit("Travel", decimal.NewFromInt(8000))
	ctrl.SetBudgetLimit("Props", decimal.NewFromInt(2000))

	budgets := ctrl.Snapshot().Budgets
	require.Len(t, budgets, 2)
	require.Equal(t, "Travel", budgets[0].Category)
	require.True(t, budgets[0].Limit.Equal(decimal.NewFromInt(8000)))
}
