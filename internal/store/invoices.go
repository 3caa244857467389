package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

func normalizeInvoiceItems(raw []byte) ([]models.InvoiceItem, error) {
	if len(raw) == 0 {
		return []models.InvoiceItem{}, nil
	}
	var items []models.InvoiceItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode invoice items: %w", err)
	}
	if items == nil {
		items = []models.InvoiceItem{}
	}
	return items, nil
}

func decodeParty(raw []byte) (models.InvoiceParty, error) {
	var party models.InvoiceParty
	if len(raw) == 0 {
		return party, nil
	}
	if err := json.Unmarshal(raw, &party); err != nil {
		return party, fmt.Errorf("failed to decode invoice party: %w", err)
	}
	return party, nil
}

// FetchInvoices returns the account's saved invoices, newest first.
func (c *Client) FetchInvoices(ctx context.Context, accountID string) ([]models.SavedInvoice, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, COALESCE(project_id::text, ''), number, date, time, recipient, company, items, paid, total
		FROM invoices
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []models.SavedInvoice
	for rows.Next() {
		var inv models.SavedInvoice
		var recipientRaw, companyRaw, itemsRaw []byte
		if err := rows.Scan(
			&inv.ID, &inv.ProjectID, &inv.Number, &inv.Date, &inv.Time,
			&recipientRaw, &companyRaw, &itemsRaw, &inv.Paid, &inv.Total,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		if inv.Recipient, err = decodeParty(recipientRaw); err != nil {
			return nil, err
		}
		if inv.Company, err = decodeParty(companyRaw); err != nil {
			return nil, err
		}
		if inv.Items, err = normalizeInvoiceItems(itemsRaw); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}
	return invoices, nil
}

// InsertInvoice adds a saved invoice and returns the inserted record.
func (c *Client) InsertInvoice(ctx context.Context, accountID string, inv models.SavedInvoice) (models.SavedInvoice, error) {
	recipientRaw, err := json.Marshal(inv.Recipient)
	if err != nil {
		return models.SavedInvoice{}, fmt.Errorf("failed to encode recipient: %w", err)
	}
	companyRaw, err := json.Marshal(inv.Company)
	if err != nil {
		return models.SavedInvoice{}, fmt.Errorf("failed to encode company: %w", err)
	}
	items := inv.Items
	if items == nil {
		items = []models.InvoiceItem{}
	}
	itemsRaw, err := json.Marshal(items)
	if err != nil {
		return models.SavedInvoice{}, fmt.Errorf("failed to encode invoice items: %w", err)
	}

	var projectID any
	if inv.ProjectID != "" {
		projectID = inv.ProjectID
	}
	err = c.db.QueryRow(ctx, `
		INSERT INTO invoices (id, user_id, project_id, number, date, time, recipient, company, items, paid, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, inv.ID, accountID, projectID, inv.Number, inv.Date, inv.Time,
		recipientRaw, companyRaw, itemsRaw, inv.Paid, inv.Total,
	).Scan(&inv.ID)
	if err != nil {
		return models.SavedInvoice{}, fmt.Errorf("failed to insert invoice: %w", err)
	}
	inv.Items = items
	return inv, nil
}

// DeleteInvoice removes a saved invoice by id.
func (c *Client) DeleteInvoice(ctx context.Context, accountID, id string) error {
	_, err := c.db.Exec(ctx, `DELETE FROM invoices WHERE user_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}
