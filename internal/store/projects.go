package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// normalizePayments decodes the payments JSONB column. A NULL or absent
// list normalizes to an empty slice so callers never see nil.
func normalizePayments(raw []byte) ([]models.Payment, error) {
	if len(raw) == 0 {
		return []models.Payment{}, nil
	}
	var payments []models.Payment
	if err := json.Unmarshal(raw, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}

func paymentsToJSON(payments []models.Payment) ([]byte, error) {
	if payments == nil {
		payments = []models.Payment{}
	}
	raw, err := json.Marshal(payments)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payments: %w", err)
	}
	return raw, nil
}

// FetchProjects returns the account's projects, newest first.
func (c *Client) FetchProjects(ctx context.Context, accountID string) ([]models.Project, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, title, client, client_phone, location, type, status, total_value, payments, date
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var paymentsRaw []byte
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Client, &p.ClientPhone, &p.Location,
			&p.Type, &p.Status, &p.TotalValue, &paymentsRaw, &p.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if p.Payments, err = normalizePayments(paymentsRaw); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}
	return projects, nil
}

// InsertProject adds a project and returns the inserted record.
func (c *Client) InsertProject(ctx context.Context, accountID string, p models.Project) (models.Project, error) {
	paymentsRaw, err := paymentsToJSON(p.Payments)
	if err != nil {
		return models.Project{}, err
	}
	err = c.db.QueryRow(ctx, `
		INSERT INTO projects (id, user_id, title, client, client_phone, location, type, status, total_value, payments, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, p.ID, accountID, p.Title, p.Client, p.ClientPhone, p.Location,
		p.Type, p.Status, p.TotalValue, paymentsRaw, p.Date,
	).Scan(&p.ID)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}
	if p.Payments == nil {
		p.Payments = []models.Payment{}
	}
	return p, nil
}

// DeleteProject removes a project by id.
func (c *Client) DeleteProject(ctx context.Context, accountID, id string) error {
	_, err := c.db.Exec(ctx, `DELETE FROM projects WHERE user_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
