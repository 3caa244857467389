package store

import (
	"context"
	"fmt"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// FetchTasks returns the account's tasks, newest first.
func (c *Client) FetchTasks(ctx context.Context, accountID string) ([]models.Task, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, title, deadline, status, priority
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Deadline, &task.Status, &task.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}
	return tasks, nil
}

// InsertTask adds a task and returns the inserted record.
func (c *Client) InsertTask(ctx context.Context, accountID string, task models.Task) (models.Task, error) {
	err := c.db.QueryRow(ctx, `
		INSERT INTO tasks (id, user_id, title, deadline, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, task.ID, accountID, task.Title, task.Deadline, task.Status, task.Priority).Scan(&task.ID)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task by id.
func (c *Client) DeleteTask(ctx context.Context, accountID, id string) error {
	_, err := c.db.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
