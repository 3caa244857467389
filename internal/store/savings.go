package store

import (
	"context"
	"fmt"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// FetchSavingsGoals returns the account's savings goals, newest first.
func (c *Client) FetchSavingsGoals(ctx context.Context, accountID string) ([]models.SavingsGoal, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, name, target, current, category
		FROM savings_goals
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings goals: %w", err)
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		if err := rows.Scan(&g.ID, &g.Name, &g.Target, &g.Current, &g.Category); err != nil {
			return nil, fmt.Errorf("failed to scan savings goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings goals: %w", err)
	}
	return goals, nil
}

// InsertSavingsGoal adds a savings goal and returns the inserted record.
func (c *Client) InsertSavingsGoal(ctx context.Context, accountID string, g models.SavingsGoal) (models.SavingsGoal, error) {
	err := c.db.QueryRow(ctx, `
		INSERT INTO savings_goals (id, user_id, name, target, current, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, g.ID, accountID, g.Name, g.Target, g.Current, g.Category).Scan(&g.ID)
	if err != nil {
		return models.SavingsGoal{}, fmt.Errorf("failed to insert savings goal: %w", err)
	}
	return g, nil
}

// UpdateSavingsGoal replaces a goal record. Current is only ever moved by
// explicit user deposits, never derived.
func (c *Client) UpdateSavingsGoal(ctx context.Context, accountID string, g models.SavingsGoal) error {
	_, err := c.db.Exec(ctx, `
		UPDATE savings_goals SET name = $3, target = $4, current = $5, category = $6
		WHERE user_id = $1 AND id = $2
	`, accountID, g.ID, g.Name, g.Target, g.Current, g.Category)
	if err != nil {
		return fmt.Errorf("failed to update savings goal: %w", err)
	}
	return nil
}

// DeleteSavingsGoal removes a savings goal by id.
func (c *Client) DeleteSavingsGoal(ctx context.Context, accountID, id string) error {
	_, err := c.db.Exec(ctx, `DELETE FROM savings_goals WHERE user_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}
	return nil
}
