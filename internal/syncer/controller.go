package syncer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sajibprobook-creator/lensfocus/internal/logger"
	"github.com/sajibprobook-creator/lensfocus/internal/models"
	"github.com/sajibprobook-creator/lensfocus/internal/store"
)

// Controller owns the snapshot for the signed-in account. It is the only
// writer; everything else reads cloned views.
type Controller struct {
	store store.Store

	refreshing atomic.Bool

	mu       sync.Mutex
	snap     Snapshot
	degraded bool
	lastSync time.Time
}

// NewController creates a controller with an empty snapshot.
func NewController(st store.Store) *Controller {
	return &Controller{
		store: st,
		snap:  emptySnapshot(),
	}
}

// RefreshAll fetches the profile and all eight collections concurrently and
// republishes the snapshot. At most one refresh runs per controller; a call
// arriving while one is in flight is dropped, not queued. Fetches are
// isolated: a failing collection keeps its previous in-memory value and the
// rest still update. RefreshAll never returns an error; the worst outcome
// is a degraded flag and a partially stale snapshot.
func (c *Controller) RefreshAll(ctx context.Context, accountID string) {
	if !c.refreshing.CompareAndSwap(false, true) {
		logger.Log.Debug().
			Str("account_hash", logger.HashAccountID(accountID)).
			Msg("Refresh already in flight, dropping request")
		return
	}
	defer c.refreshing.Store(false)

	c.mu.Lock()
	c.degraded = false
	c.mu.Unlock()

	profile, err := c.store.FetchProfile(ctx, accountID)
	if err != nil {
		// Profile fetch errors are logged for diagnostics; the prior
		// profile stays in place.
		logger.Log.Warn().Err(err).
			Str("account_hash", logger.HashAccountID(accountID)).
			Msg("Profile fetch failed")
		c.markDegraded()
	} else if profile != nil {
		c.mu.Lock()
		c.snap.Profile = profile
		c.mu.Unlock()
	}

	var wg sync.WaitGroup
	c.fetchCollection(&wg, "projects", func() error {
		projects, err := c.store.FetchProjects(ctx, accountID)
		if err != nil {
			return err
		}
		if projects == nil {
			projects = []models.Project{}
		}
		c.mu.Lock()
		c.snap.Projects = projects
		c.mu.Unlock()
		return nil
	})
	c.fetchCollection(&wg, "transactions", func() error {
		transactions, err := c.store.FetchTransactions(ctx, accountID)
		if err != nil {
			return err
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		c.mu.Lock()
		c.snap.Transactions = transactions
		c.mu.Unlock()
		return nil
	})
	c.fetchCollection(&wg, "tasks", func() error {
		tasks, err := c.store.FetchTasks(ctx, accountID)
		if err != nil {
			return err
		}
		if tasks == nil {
			tasks = []models.Task{}
		}
		c.mu.Lock()
		c.snap.Tasks = tasks
		c.mu.Unlock()
		return nil
	})
	c.fetchCollection(&wg, "life_events", func() error {
		events, err := c.store.FetchEvents(ctx, accountID)
		if err != nil {
			return err
		}
		if events == nil {
			events = []models.LifeEvent{}
		}
		c.mu.Lock()
		c.snap.Events = events
		c.mu.Unlock()
		return nil
	})
	c.fetchCollection(&wg, "clients", func() error {
		clients, err := c.store.FetchClients(ctx, accountID)
		if err != nil {
			return err
		}
		if clients == nil {
			clients = []models.Client{}
		}
		c.mu.Lock()
		c.snap.Clients = clients
		c.mu.Unlock()
		return nil
	})
	c.fetchCollection(&wg, "professionals", func() error {
		professionals, err := c.store.FetchProfessionals(ctx, accountID)
		if err != nil {
			return err
		}
		if professionals == nil {
			professionals = []models.Professional{}
		}
		c.mu.Lock()
		c.snap.Professionals = professionals
		c.mu.Unlock()
		return nil
	})
	c.fetchCollection(&wg, "invoices", func() error {
		invoices, err := c.store.FetchInvoices(ctx, accountID)
		if err != nil {
			return err
		}
		if invoices == nil {
			invoices = []models.SavedInvoice{}
		}
		c.mu.Lock()
		c.snap.Invoices = invoices
		c.mu.Unlock()
		return nil
	})
	c.fetchCollection(&wg, "savings_goals", func() error {
		goals, err := c.store.FetchSavingsGoals(ctx, accountID)
		if err != nil {
			return err
		}
		if goals == nil {
			goals = []models.SavingsGoal{}
		}
		c.mu.Lock()
		c.snap.SavingsGoals = goals
		c.mu.Unlock()
		return nil
	})
	wg.Wait()

	c.mu.Lock()
	c.lastSync = time.Now()
	c.mu.Unlock()
}

// fetchCollection runs one collection fetch concurrently with all-settle
// semantics: errors and panics are contained to this collection.
func (c *Controller) fetchCollection(wg *sync.WaitGroup, name string, fetch func() error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error().Any("panic", r).Str("collection", name).Msg("Collection fetch panicked")
				c.markDegraded()
			}
		}()
		if err := fetch(); err != nil {
			logger.Log.Warn().Err(err).Str("collection", name).Msg("Collection fetch failed, keeping previous data")
			c.markDegraded()
		}
	}()
}

func (c *Controller) markDegraded() {
	c.mu.Lock()
	c.degraded = true
	c.mu.Unlock()
}

// Reset clears every collection and drops the profile. Invoked on sign-out;
// makes no network calls.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = emptySnapshot()
	c.degraded = false
	c.lastSync = time.Time{}
}

// Snapshot returns a deep copy of the current snapshot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.Clone()
}

// Degraded reports whether the last refresh cycle had any failed fetch.
// Cleared at the start of every refresh, so the banner it backs dismisses
// itself on the next fully successful cycle.
func (c *Controller) Degraded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.degraded
}

// LastSync is the completion time of the most recent refresh cycle.
func (c *Controller) LastSync() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSync
}

// SetBudgetLimit records a local budget limit for a category. Budgets are
// not a remote collection; spent is always derived from transactions.
func (c *Controller) SetBudgetLimit(category string, limit decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, b := range c.snap.Budgets {
		if b.Category == category {
			c.snap.Budgets[i].Limit = limit
			return
		}
	}
	c.snap.Budgets = append(c.snap.Budgets, models.Budget{Category: category, Limit: limit})
}
