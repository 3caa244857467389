package store

import (
	"context"
	"fmt"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// eventRow mirrors the remote column layout of the life_events table.
type eventRow struct {
	ID          string
	Title       string
	Date        string
	Time        string
	Category    string
	Description string
	ClientName  string // client_name
	ClientPhone string // client_phone
	Location    string
}

func (r eventRow) toModel() models.LifeEvent {
	return models.LifeEvent{
		ID:          r.ID,
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		Category:    r.Category,
		Description: r.Description,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Location:    r.Location,
	}
}

func eventToRow(ev models.LifeEvent) eventRow {
	return eventRow{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        ev.Date,
		Time:        ev.Time,
		Category:    ev.Category,
		Description: ev.Description,
		ClientName:  ev.ClientName,
		ClientPhone: ev.ClientPhone,
		Location:    ev.Location,
	}
}

// FetchEvents returns the account's calendar events, earliest date first.
func (c *Client) FetchEvents(ctx context.Context, accountID string) ([]models.LifeEvent, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, title, date, time, category, description, client_name, client_phone, location
		FROM life_events
		WHERE user_id = $1
		ORDER BY date ASC, time ASC, id ASC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query life events: %w", err)
	}
	defer rows.Close()

	var events []models.LifeEvent
	for rows.Next() {
		var row eventRow
		if err := rows.Scan(
			&row.ID, &row.Title, &row.Date, &row.Time, &row.Category,
			&row.Description, &row.ClientName, &row.ClientPhone, &row.Location,
		); err != nil {
			return nil, fmt.Errorf("failed to scan life event: %w", err)
		}
		events = append(events, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating life events: %w", err)
	}
	return events, nil
}

// InsertEvent adds a calendar event and returns the inserted record.
func (c *Client) InsertEvent(ctx context.Context, accountID string, ev models.LifeEvent) (models.LifeEvent, error) {
	row := eventToRow(ev)
	err := c.db.QueryRow(ctx, `
		INSERT INTO life_events (id, user_id, title, date, time, category, description, client_name, client_phone, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, row.ID, accountID, row.Title, row.Date, row.Time, row.Category,
		row.Description, row.ClientName, row.ClientPhone, row.Location,
	).Scan(&ev.ID)
	if err != nil {
		return models.LifeEvent{}, fmt.Errorf("failed to insert life event: %w", err)
	}
	return ev, nil
}

// DeleteEvent removes a calendar event by id.
func (c *Client) DeleteEvent(ctx context.Context, accountID, id string) error {
	_, err := c.db.Exec(ctx, `DELETE FROM life_events WHERE user_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete life event: %w", err)
	}
	return nil
}
