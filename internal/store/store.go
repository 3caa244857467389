// Package store implements the remote row store the synchronization
// controller reads from and the mutation dispatchers write through.
// Every query is scoped by the account (user_id) column.
package store

import (
	"context"

	"github.com/sajibprobook-creator/lensfocus/internal/database"
	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// Store is the remote-store contract consumed by the synchronization
// controller and the mutation dispatchers. A fake implementation backs the
// controller tests.
type Store interface {
	// Profile is a singleton per account: select by primary key, at most one row.
	FetchProfile(ctx context.Context, accountID string) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile models.Profile) error
	UpdateProfile(ctx context.Context, profile models.Profile) error
	UpdateLogo(ctx context.Context, accountID, logoURL string) error

	FetchProjects(ctx context.Context, accountID string) ([]models.Project, error)
	InsertProject(ctx context.Context, accountID string, p models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, accountID, id string) error

	FetchTransactions(ctx context.Context, accountID string) ([]models.Transaction, error)
	InsertTransaction(ctx context.Context, accountID string, tr models.Transaction) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, accountID, id string) error

	FetchTasks(ctx context.Context, accountID string) ([]models.Task, error)
	InsertTask(ctx context.Context, accountID string, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, accountID, id string) error

	FetchEvents(ctx context.Context, accountID string) ([]models.LifeEvent, error)
	InsertEvent(ctx context.Context, accountID string, ev models.LifeEvent) (models.LifeEvent, error)
	DeleteEvent(ctx context.Context, accountID, id string) error

	FetchClients(ctx context.Context, accountID string) ([]models.Client, error)
	InsertClient(ctx context.Context, accountID string, c models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, accountID, id string) error

	FetchProfessionals(ctx context.Context, accountID string) ([]models.Professional, error)
	InsertProfessional(ctx context.Context, accountID string, p models.Professional) (models.Professional, error)
	DeleteProfessional(ctx context.Context, accountID, id string) error

	FetchSavingsGoals(ctx context.Context, accountID string) ([]models.SavingsGoal, error)
	InsertSavingsGoal(ctx context.Context, accountID string, g models.SavingsGoal) (models.SavingsGoal, error)
	UpdateSavingsGoal(ctx context.Context, accountID string, g models.SavingsGoal) error
	DeleteSavingsGoal(ctx context.Context, accountID, id string) error

	FetchInvoices(ctx context.Context, accountID string) ([]models.SavedInvoice, error)
	InsertInvoice(ctx context.Context, accountID string, inv models.SavedInvoice) (models.SavedInvoice, error)
	DeleteInvoice(ctx context.Context, accountID, id string) error
}

// Client is the PostgreSQL-backed Store.
type Client struct {
	db database.PGXDB
}

// NewClient creates a store client on top of a pool or transaction.
func NewClient(db database.PGXDB) *Client {
	return &Client{db: db}
}

// DB returns the underlying database handle. Used for testing.
func (c *Client) DB() database.PGXDB {
	return c.db
}

var _ Store = (*Client)(nil)
