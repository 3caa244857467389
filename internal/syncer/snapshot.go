// Package syncer maintains the authoritative in-memory snapshot of one
// account's collections and drives full-refresh cycles against the remote
// store.
package syncer

import (
	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// Snapshot is the complete set of an account's entity collections at a
// point in time. Budgets live only here: limits are set locally and spent
// is always derived from transactions.
type Snapshot struct {
	Profile       *models.Profile
	Projects      []models.Project
	Transactions  []models.Transaction
	Tasks         []models.Task
	Events        []models.LifeEvent
	Clients       []models.Client
	Professionals []models.Professional
	SavingsGoals  []models.SavingsGoal
	Invoices      []models.SavedInvoice
	Budgets       []models.Budget
}

// emptySnapshot returns a snapshot with every collection present but empty.
func emptySnapshot() Snapshot {
	return Snapshot{
		Projects:      []models.Project{},
		Transactions:  []models.Transaction{},
		Tasks:         []models.Task{},
		Events:        []models.LifeEvent{},
		Clients:       []models.Client{},
		Professionals: []models.Professional{},
		SavingsGoals:  []models.SavingsGoal{},
		Invoices:      []models.SavedInvoice{},
		Budgets:       []models.Budget{},
	}
}

// Clone returns a deep copy so readers never alias the controller's state.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Profile != nil {
		profile := *s.Profile
		out.Profile = &profile
	}
	out.Projects = make([]models.Project, len(s.Projects))
	for i, p := range s.Projects {
		payments := make([]models.Payment, len(p.Payments))
		copy(payments, p.Payments)
		p.Payments = payments
		out.Projects[i] = p
	}
	out.Invoices = make([]models.SavedInvoice, len(s.Invoices))
	for i, inv := range s.Invoices {
		items := make([]models.InvoiceItem, len(inv.Items))
		copy(items, inv.Items)
		inv.Items = items
		out.Invoices[i] = inv
	}
	out.Transactions = make([]models.Transaction, len(s.Transactions))
	copy(out.Transactions, s.Transactions)
	out.Tasks = make([]models.Task, len(s.Tasks))
	copy(out.Tasks, s.Tasks)
	out.Events = make([]models.LifeEvent, len(s.Events))
	copy(out.Events, s.Events)
	out.Clients = make([]models.Client, len(s.Clients))
	copy(out.Clients, s.Clients)
	out.Professionals = make([]models.Professional, len(s.Professionals))
	copy(out.Professionals, s.Professionals)
	out.SavingsGoals = make([]models.SavingsGoal, len(s.SavingsGoals))
	copy(out.SavingsGoals, s.SavingsGoals)
	out.Budgets = make([]models.Budget, len(s.Budgets))
	copy(out.Budgets, s.Budgets)
	return out
}
