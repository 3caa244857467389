package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// profileRow mirrors the remote column layout of the profiles table.
type profileRow struct {
	ID         string
	OwnerName  string // owner_name
	StudioName string // studio_name
	Email      string
	Phone      string
	Role       string
	LogoURL    string // logo_url
}

func (r profileRow) toModel() models.Profile {
	return models.Profile{
		ID:         r.ID,
		OwnerName:  r.OwnerName,
		StudioName: r.StudioName,
		Email:      r.Email,
		Phone:      r.Phone,
		Role:       r.Role,
		LogoURL:    r.LogoURL,
	}
}

func profileToRow(p models.Profile) profileRow {
	return profileRow{
		ID:         p.ID,
		OwnerName:  p.OwnerName,
		StudioName: p.StudioName,
		Email:      p.Email,
		Phone:      p.Phone,
		Role:       p.Role,
		LogoURL:    p.LogoURL,
	}
}

// FetchProfile looks up the singleton profile by primary key.
// A missing row is "no data", not an error.
func (c *Client) FetchProfile(ctx context.Context, accountID string) (*models.Profile, error) {
	var row profileRow
	err := c.db.QueryRow(ctx, `
		SELECT id, owner_name, studio_name, email, phone, role, logo_url
		FROM profiles WHERE id = $1
	`, accountID).Scan(&row.ID, &row.OwnerName, &row.StudioName, &row.Email, &row.Phone, &row.Role, &row.LogoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	profile := row.toModel()
	return &profile, nil
}

// CreateProfile inserts the account's profile record at account setup.
func (c *Client) CreateProfile(ctx context.Context, profile models.Profile) error {
	row := profileToRow(profile)
	_, err := c.db.Exec(ctx, `
		INSERT INTO profiles (id, owner_name, studio_name, email, phone, role, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, row.ID, row.OwnerName, row.StudioName, row.Email, row.Phone, row.Role, row.LogoURL)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// UpdateProfile replaces the whole profile record.
func (c *Client) UpdateProfile(ctx context.Context, profile models.Profile) error {
	row := profileToRow(profile)
	_, err := c.db.Exec(ctx, `
		UPDATE profiles SET
			owner_name = $2,
			studio_name = $3,
			email = $4,
			phone = $5,
			role = $6,
			logo_url = $7,
			updated_at = NOW()
		WHERE id = $1
	`, row.ID, row.OwnerName, row.StudioName, row.Email, row.Phone, row.Role, row.LogoURL)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// UpdateLogo stores a new logo reference. The one field-level patch the
// write path allows.
func (c *Client) UpdateLogo(ctx context.Context, accountID, logoURL string) error {
	_, err := c.db.Exec(ctx, `
		UPDATE profiles SET logo_url = $2, updated_at = NOW() WHERE id = $1
	`, accountID, logoURL)
	if err != nil {
		return fmt.Errorf("failed to update logo: %w", err)
	}
	return nil
}
