// Package storetest provides an in-memory Store fake for controller and
// dispatcher tests.
package storetest

import (
	"context"
	"sync"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
	"github.com/sajibprobook-creator/lensfocus/internal/store"
)

// Fake is an in-memory store.Store. Collections are plain slices; tests
// may inject per-collection errors or gates that block a fetch until
// released.
type Fake struct {
	mu sync.Mutex

	Profile       *models.Profile
	Projects      []models.Project
	Transactions  []models.Transaction
	Tasks         []models.Task
	Events        []models.LifeEvent
	Clients       []models.Client
	Professionals []models.Professional
	SavingsGoals  []models.SavingsGoal
	Invoices      []models.SavedInvoice

	// Errs maps a collection name ("transactions", "profile", ...) to an
	// error its fetch returns.
	Errs map[string]error
	// Gates maps a collection name to a channel its fetch blocks on until
	// the channel is closed.
	Gates map[string]chan struct{}
	// FetchCounts records how many times each collection was fetched.
	FetchCounts map[string]int
}

var _ store.Store = (*Fake)(nil)

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{
		Errs:        make(map[string]error),
		Gates:       make(map[string]chan struct{}),
		FetchCounts: make(map[string]int),
	}
}

// SetError makes the named collection's fetch fail.
func (f *Fake) SetError(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errs[name] = err
}

// Gate makes the named collection's fetch block until the returned channel
// is closed.
func (f *Fake) Gate(name string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.Gates[name] = ch
	return ch
}

// Count returns how many times the named collection has been fetched.
func (f *Fake) Count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.FetchCounts[name]
}

// begin records the fetch, waits on any gate, and returns the configured error.
func (f *Fake) begin(name string) error {
	f.mu.Lock()
	f.FetchCounts[name]++
	gate := f.Gates[name]
	err := f.Errs[name]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return err
}

func (f *Fake) FetchProfile(_ context.Context, _ string) (*models.Profile, error) {
	if err := f.begin("profile"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Profile == nil {
		return nil, nil
	}
	profile := *f.Profile
	return &profile, nil
}

func (f *Fake) CreateProfile(_ context.Context, profile models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Profile = &profile
	return nil
}

func (f *Fake) UpdateProfile(_ context.Context, profile models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Profile = &profile
	return nil
}

func (f *Fake) UpdateLogo(_ context.Context, _ string, logoURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Profile != nil {
		f.Profile.LogoURL = logoURL
	}
	return nil
}

func (f *Fake) FetchProjects(_ context.Context, _ string) ([]models.Project, error) {
	if err := f.begin("projects"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Project{}, f.Projects...), nil
}

func (f *Fake) InsertProject(_ context.Context, _ string, p models.Project) (models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Projects = append([]models.Project{p}, f.Projects...)
	return p, nil
}

func (f *Fake) DeleteProject(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.Projects {
		if p.ID == id {
			f.Projects = append(f.Projects[:i], f.Projects[i+1:]...)
			break
		}
	}
	return nil
}

func (f *Fake) FetchTransactions(_ context.Context, _ string) ([]models.Transaction, error) {
	if err := f.begin("transactions"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Transaction{}, f.Transactions...), nil
}

func (f *Fake) InsertTransaction(_ context.Context, _ string, tr models.Transaction) (models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Transactions = append([]models.Transaction{tr}, f.Transactions...)
	return tr, nil
}

func (f *Fake) DeleteTransaction(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, tr := range f.Transactions {
		if tr.ID == id {
			f.Transactions = append(f.Transactions[:i], f.Transactions[i+1:]...)
			break
		}
	}
	return nil
}

func (f *Fake) FetchTasks(_ context.Context, _ string) ([]models.Task, error) {
	if err := f.begin("tasks"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Task{}, f.Tasks...), nil
}

func (f *Fake) InsertTask(_ context.Context, _ string, task models.Task) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Tasks = append([]models.Task{task}, f.Tasks...)
	return task, nil
}

func (f *Fake) DeleteTask(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, task := range f.Tasks {
		if task.ID == id {
			f.Tasks = append(f.Tasks[:i], f.Tasks[i+1:]...)
			break
		}
	}
	return nil
}

func (f *Fake) FetchEvents(_ context.Context, _ string) ([]models.LifeEvent, error) {
	if err := f.begin("life_events"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.LifeEvent{}, f.Events...), nil
}

func (f *Fake) InsertEvent(_ context.Context, _ string, ev models.LifeEvent) (models.LifeEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Events = append(f.Events, ev)
	return ev, nil
}

func (f *Fake) DeleteEvent(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, ev := range f.Events {
		if ev.ID == id {
			f.Events = append(f.Events[:i], f.Events[i+1:]...)
			break
		}
	}
	return nil
}

func (f *Fake) FetchClients(_ context.Context, _ string) ([]models.Client, error) {
	if err := f.begin("clients"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Client{}, f.Clients...), nil
}

func (f *Fake) InsertClient(_ context.Context, _ string, c models.Client) (models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Clients = append(f.Clients, c)
	return c, nil
}

func (f *Fake) DeleteClient(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.Clients {
		if c.ID == id {
			f.Clients = append(f.Clients[:i], f.Clients[i+1:]...)
			break
		}
	}
	return nil
}

func (f *Fake) FetchProfessionals(_ context.Context, _ string) ([]models.Professional, error) {
	if err := f.begin("professionals"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Professional{}, f.Professionals...), nil
}

func (f *Fake) InsertProfessional(_ context.Context, _ string, p models.Professional) (models.Professional, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Professionals = append(f.Professionals, p)
	return p, nil
}

func (f *Fake) DeleteProfessional(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.Professionals {
		if p.ID == id {
			f.Professionals = append(f.Professionals[:i], f.Professionals[i+1:]...)
			break
		}
	}
	return nil
}

func (f *Fake) FetchSavingsGoals(_ context.Context, _ string) ([]models.SavingsGoal, error) {
	if err := f.begin("savings_goals"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.SavingsGoal{}, f.SavingsGoals...), nil
}

func (f *Fake) InsertSavingsGoal(_ context.Context, _ string, g models.SavingsGoal) (models.SavingsGoal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SavingsGoals = append([]models.SavingsGoal{g}, f.SavingsGoals...)
	return g, nil
}

func (f *Fake) UpdateSavingsGoal(_ context.Context, _ string, g models.SavingsGoal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.SavingsGoals {
		if existing.ID == g.ID {
			f.SavingsGoals[i] = g
			break
		}
	}
	return nil
}

func (f *Fake) DeleteSavingsGoal(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, g := range f.SavingsGoals {
		if g.ID == id {
			f.SavingsGoals = append(f.SavingsGoals[:i], f.SavingsGoals[i+1:]...)
			break
		}
	}
	return nil
}

func (f *Fake) FetchInvoices(_ context.Context, _ string) ([]models.SavedInvoice, error) {
	if err := f.begin("invoices"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.SavedInvoice{}, f.Invoices...), nil
}

func (f *Fake) InsertInvoice(_ context.Context, _ string, inv models.SavedInvoice) (models.SavedInvoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Invoices = append([]models.SavedInvoice{inv}, f.Invoices...)
	return inv, nil
}

func (f *Fake) DeleteInvoice(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, inv := range f.Invoices {
		if inv.ID == id {
			f.Invoices = append(f.Invoices[:i], f.Invoices[i+1:]...)
			break
		}
	}
	return nil
}
