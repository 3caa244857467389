// Package dispatch implements the write path: every mutation goes through
// the remote store first and then triggers a full snapshot refresh. There
// is no optimistic local patching; the refresh is the only way snapshot
// state changes after a write.
package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
	"github.com/sajibprobook-creator/lensfocus/internal/store"
	"github.com/sajibprobook-creator/lensfocus/internal/syncer"
)

// Dispatcher writes through the store and refreshes the snapshot after
// every successful mutation.
type Dispatcher struct {
	store store.Store
	ctrl  *syncer.Controller
}

// New creates a dispatcher over the given store and controller.
func New(s store.Store, ctrl *syncer.Controller) *Dispatcher {
	return &Dispatcher{store: s, ctrl: ctrl}
}

func (d *Dispatcher) refresh(ctx context.Context, accountID string) {
	d.ctrl.RefreshAll(ctx, accountID)
}

// CreateProject persists the project and refreshes. A missing id is
// assigned client-side.
func (d *Dispatcher) CreateProject(ctx context.Context, accountID string, p models.Project) (models.Project, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	inserted, err := d.store.InsertProject(ctx, accountID, p)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	d.refresh(ctx, accountID)
	return inserted, nil
}

func (d *Dispatcher) DeleteProject(ctx context.Context, accountID, id string) error {
	if err := d.store.DeleteProject(ctx, accountID, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}

// CreateTransaction persists a ledger entry and refreshes. The default
// currency applies when none was chosen.
func (d *Dispatcher) CreateTransaction(ctx context.Context, accountID string, tr models.Transaction) (models.Transaction, error) {
	if tr.ID == "" {
		tr.ID = uuid.NewString()
	}
	if tr.Currency == "" {
		tr.Currency = models.DefaultCurrency
	}
	inserted, err := d.store.InsertTransaction(ctx, accountID, tr)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	d.refresh(ctx, accountID)
	return inserted, nil
}

func (d *Dispatcher) DeleteTransaction(ctx context.Context, accountID, id string) error {
	if err := d.store.DeleteTransaction(ctx, accountID, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}

func (d *Dispatcher) CreateTask(ctx context.Context, accountID string, task models.Task) (models.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	inserted, err := d.store.InsertTask(ctx, accountID, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	d.refresh(ctx, accountID)
	return inserted, nil
}

func (d *Dispatcher) DeleteTask(ctx context.Context, accountID, id string) error {
	if err := d.store.DeleteTask(ctx, accountID, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}

func (d *Dispatcher) CreateEvent(ctx context.Context, accountID string, ev models.LifeEvent) (models.LifeEvent, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	inserted, err := d.store.InsertEvent(ctx, accountID, ev)
	if err != nil {
		return models.LifeEvent{}, fmt.Errorf("failed to create event: %w", err)
	}
	d.refresh(ctx, accountID)
	return inserted, nil
}

func (d *Dispatcher) DeleteEvent(ctx context.Context, accountID, id string) error {
	if err := d.store.DeleteEvent(ctx, accountID, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}

func (d *Dispatcher) CreateClient(ctx context.Context, accountID string, c models.Client) (models.Client, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	inserted, err := d.store.InsertClient(ctx, accountID, c)
	if err != nil {
		return models.Client{}, fmt.Errorf("failed to create client: %w", err)
	}
	d.refresh(ctx, accountID)
	return inserted, nil
}

func (d *Dispatcher) DeleteClient(ctx context.Context, accountID, id string) error {
	if err := d.store.DeleteClient(ctx, accountID, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}

func (d *Dispatcher) CreateProfessional(ctx context.Context, accountID string, p models.Professional) (models.Professional, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	inserted, err := d.store.InsertProfessional(ctx, accountID, p)
	if err != nil {
		return models.Professional{}, fmt.Errorf("failed to create professional: %w", err)
	}
	d.refresh(ctx, accountID)
	return inserted, nil
}

func (d *Dispatcher) DeleteProfessional(ctx context.Context, accountID, id string) error {
	if err := d.store.DeleteProfessional(ctx, accountID, id); err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}

func (d *Dispatcher) CreateSavingsGoal(ctx context.Context, accountID string, g models.SavingsGoal) (models.SavingsGoal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	inserted, err := d.store.InsertSavingsGoal(ctx, accountID, g)
	if err != nil {
		return models.SavingsGoal{}, fmt.Errorf("failed to create savings goal: %w", err)
	}
	d.refresh(ctx, accountID)
	return inserted, nil
}

// UpdateSavingsGoal persists a changed goal balance (manual deposits) and
// refreshes.
func (d *Dispatcher) UpdateSavingsGoal(ctx context.Context, accountID string, g models.SavingsGoal) error {
	if err := d.store.UpdateSavingsGoal(ctx, accountID, g); err != nil {
		return fmt.Errorf("failed to update savings goal: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}

func (d *Dispatcher) DeleteSavingsGoal(ctx context.Context, accountID, id string) error {
	if err := d.store.DeleteSavingsGoal(ctx, accountID, id); err != nil {
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}

func (d *Dispatcher) CreateInvoice(ctx context.Context, accountID string, inv models.SavedInvoice) (models.SavedInvoice, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	inserted, err := d.store.InsertInvoice(ctx, accountID, inv)
	if err != nil {
		return models.SavedInvoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}
	d.refresh(ctx, accountID)
	return inserted, nil
}

func (d *Dispatcher) DeleteInvoice(ctx context.Context, accountID, id string) error {
	if err := d.store.DeleteInvoice(ctx, accountID, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}

// SaveProfile creates the profile row when none exists yet, otherwise
// replaces the whole record.
func (d *Dispatcher) SaveProfile(ctx context.Context, profile models.Profile) error {
	existing, err := d.store.FetchProfile(ctx, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if existing == nil {
		err = d.store.CreateProfile(ctx, profile)
	} else {
		err = d.store.UpdateProfile(ctx, profile)
	}
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	d.refresh(ctx, profile.ID)
	return nil
}

// UpdateLogo is the one field-level patch the write path allows.
func (d *Dispatcher) UpdateLogo(ctx context.Context, accountID, logoURL string) error {
	if err := d.store.UpdateLogo(ctx, accountID, logoURL); err != nil {
		return fmt.Errorf("failed to update logo: %w", err)
	}
	d.refresh(ctx, accountID)
	return nil
}
