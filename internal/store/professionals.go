package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// professionalRow mirrors the remote column layout of the professionals table.
type professionalRow struct {
	ID        string
	Name      string
	Role      string
	Phone     string
	DailyRate decimal.Decimal // daily_rate
	Portfolio string
	Location  string
}

func (r professionalRow) toModel() models.Professional {
	return models.Professional{
		ID:        r.ID,
		Name:      r.Name,
		Role:      r.Role,
		Phone:     r.Phone,
		DailyRate: r.DailyRate,
		Portfolio: r.Portfolio,
		Location:  r.Location,
	}
}

func professionalToRow(p models.Professional) professionalRow {
	return professionalRow{
		ID:        p.ID,
		Name:      p.Name,
		Role:      p.Role,
		Phone:     p.Phone,
		DailyRate: p.DailyRate,
		Portfolio: p.Portfolio,
		Location:  p.Location,
	}
}

// FetchProfessionals returns the account's team members in name order.
func (c *Client) FetchProfessionals(ctx context.Context, accountID string) ([]models.Professional, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, name, role, phone, daily_rate, portfolio, location
		FROM professionals
		WHERE user_id = $1
		ORDER BY name ASC, id ASC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query professionals: %w", err)
	}
	defer rows.Close()

	var professionals []models.Professional
	for rows.Next() {
		var row professionalRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Role, &row.Phone, &row.DailyRate, &row.Portfolio, &row.Location); err != nil {
			return nil, fmt.Errorf("failed to scan professional: %w", err)
		}
		professionals = append(professionals, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professionals: %w", err)
	}
	return professionals, nil
}

// InsertProfessional adds a team member and returns the inserted record.
func (c *Client) InsertProfessional(ctx context.Context, accountID string, p models.Professional) (models.Professional, error) {
	row := professionalToRow(p)
	err := c.db.QueryRow(ctx, `
		INSERT INTO professionals (id, user_id, name, role, phone, daily_rate, portfolio, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, row.ID, accountID, row.Name, row.Role, row.Phone, row.DailyRate, row.Portfolio, row.Location).Scan(&p.ID)
	if err != nil {
		return models.Professional{}, fmt.Errorf("failed to insert professional: %w", err)
	}
	return p, nil
}

// DeleteProfessional removes a team member by id.
func (c *Client) DeleteProfessional(ctx context.Context, accountID, id string) error {
	_, err := c.db.Exec(ctx, `DELETE FROM professionals WHERE user_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}
	return nil
}
