// Package invoice derives invoice documents from projects and computes
// their totals.
package invoice

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// Total sums the line item amounts. A negative amount is a data entry
// error and is rejected instead of being coerced to zero.
func Total(items []models.InvoiceItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		if item.Amount.IsNegative() {
			return decimal.Zero, fmt.Errorf("invoice item %q has negative amount %s", item.Description, item.Amount)
		}
		total = total.Add(item.Amount)
	}
	return total, nil
}

// BalanceDue is total minus paid. It goes negative when the client has
// overpaid; callers decide how to present that.
func BalanceDue(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}

// NumberForProject derives a stable invoice number from the project id.
func NumberForProject(p models.Project) string {
	id := p.ID
	if len(id) > 5 {
		id = id[:5]
	}
	return "MC-" + strings.ToUpper(id)
}

// ManualNumber returns a fresh number for an invoice not tied to any project.
func ManualNumber() string {
	return fmt.Sprintf("MC-CUST-%d", 1000+rand.Intn(9000))
}

// FromProject prefills an invoice draft for a project: one line item at
// the project's total value, paid set to the instalments received so far.
// The recipient comes from the matched client when available, otherwise
// from the contact details recorded on the project itself.
func FromProject(p models.Project, client *models.Client, company models.InvoiceParty, now time.Time) (models.SavedInvoice, error) {
	items := []models.InvoiceItem{
		{ID: "1", Description: "Photography", Amount: p.TotalValue},
	}
	total, err := Total(items)
	if err != nil {
		return models.SavedInvoice{}, err
	}

	recipient := models.InvoiceParty{Name: p.Client, Phone: p.ClientPhone}
	if client != nil {
		recipient = models.InvoiceParty{
			Name:    client.Name,
			Email:   client.Email,
			Phone:   client.Phone,
			Address: client.Address,
		}
	}

	return models.SavedInvoice{
		ProjectID: p.ID,
		Number:    NumberForProject(p),
		Date:      now.Format("2006-01-02"),
		Time:      "12:00",
		Recipient: recipient,
		Company:   company,
		Items:     items,
		Paid:      p.PaidAmount(),
		Total:     total,
	}, nil
}
