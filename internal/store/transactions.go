package store

import (
	"context"
	"fmt"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// FetchTransactions returns the account's ledger, most recent date first.
func (c *Client) FetchTransactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, COALESCE(project_id::text, ''), amount, type, category, date, description, currency
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tr models.Transaction
		if err := rows.Scan(
			&tr.ID, &tr.ProjectID, &tr.Amount, &tr.Type,
			&tr.Category, &tr.Date, &tr.Description, &tr.Currency,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}

// InsertTransaction adds a ledger entry and returns the inserted record.
func (c *Client) InsertTransaction(ctx context.Context, accountID string, tr models.Transaction) (models.Transaction, error) {
	var projectID any
	if tr.ProjectID != "" {
		projectID = tr.ProjectID
	}
	err := c.db.QueryRow(ctx, `
		INSERT INTO transactions (id, user_id, project_id, amount, type, category, date, description, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, tr.ID, accountID, projectID, tr.Amount, tr.Type, tr.Category, tr.Date, tr.Description, tr.Currency,
	).Scan(&tr.ID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return tr, nil
}

// DeleteTransaction removes a ledger entry by id.
func (c *Client) DeleteTransaction(ctx context.Context, accountID, id string) error {
	_, err := c.db.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
