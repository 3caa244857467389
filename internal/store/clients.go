package store

import (
	"context"
	"fmt"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// FetchClients returns the account's clients in name order.
func (c *Client) FetchClients(ctx context.Context, accountID string) ([]models.Client, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, name, phone, email, social, address, category
		FROM clients
		WHERE user_id = $1
		ORDER BY name ASC, id ASC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var cl models.Client
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Phone, &cl.Email, &cl.Social, &cl.Address, &cl.Category); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}
	return clients, nil
}

// InsertClient adds a client and returns the inserted record.
func (c *Client) InsertClient(ctx context.Context, accountID string, cl models.Client) (models.Client, error) {
	err := c.db.QueryRow(ctx, `
		INSERT INTO clients (id, user_id, name, phone, email, social, address, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, cl.ID, accountID, cl.Name, cl.Phone, cl.Email, cl.Social, cl.Address, cl.Category).Scan(&cl.ID)
	if err != nil {
		return models.Client{}, fmt.Errorf("failed to insert client: %w", err)
	}
	return cl, nil
}

// DeleteClient removes a client by id.
func (c *Client) DeleteClient(ctx context.Context, accountID, id string) error {
	_, err := c.db.Exec(ctx, `DELETE FROM clients WHERE user_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
