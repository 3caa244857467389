package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

func TestNormalizePayments(t *testing.T) {
	t.Parallel()

	t.Run("nil column defaults to empty slice", func(t *testing.T) {
		t.Parallel()
		payments, err := normalizePayments(nil)
		require.NoError(t, err)
		require.NotNil(t, payments)
		require.Empty(t, payments)
	})

	t.Run("json null defaults to empty slice", func(t *testing.T) {
		t.Parallel()
		payments, err := normalizePayments([]byte(`null`))
		require.NoError(t, err)
		require.NotNil(t, payments)
		require.Empty(t, payments)
	})

	t.Run("decodes a payment list", func(t *testing.T) {
		t.Parallel()
		raw := []byte(`[{"id":"p1","amount":"1500","date":"2024-05-03","method":"CASH","label":"Advance"}]`)
		payments, err := normalizePayments(raw)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		require.Equal(t, "p1", payments[0].ID)
		require.True(t, payments[0].Amount.Equal(decimal.NewFromInt(1500)))
		require.Equal(t, models.PaymentCash, payments[0].Method)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()
		_, err := normalizePayments([]byte(`{not json`))
		require.Error(t, err)
	})

	t.Run("round trips through encode and decode", func(t *testing.T) {
		t.Parallel()
		original := []models.Payment{
			{ID: "p1", Amount: decimal.NewFromInt(2000), Date: "2024-05-03", Method: models.PaymentBank, Label: "Advance"},
			{ID: "p2", Amount: decimal.NewFromInt(3000), Date: "2024-06-01", Method: models.PaymentOnline, Label: "Final"},
		}
		raw, err := paymentsToJSON(original)
		require.NoError(t, err)
		decoded, err := normalizePayments(raw)
		require.NoError(t, err)
		require.Equal(t, original, decoded)
	})
}

func TestProfileRowMapping(t *testing.T) {
	t.Parallel()

	t.Run("remote columns map to internal fields", func(t *testing.T) {
		t.Parallel()
		row := profileRow{OwnerName: "A", StudioName: "B", LogoURL: "https://cdn/logo.png"}
		profile := row.toModel()
		require.Equal(t, "A", profile.OwnerName)
		require.Equal(t, "B", profile.StudioName)
		require.Equal(t, "https://cdn/logo.png", profile.LogoURL)
	})

	t.Run("write path uses the exact inverse mapping", func(t *testing.T) {
		t.Parallel()
		profile := models.Profile{
			ID:         "acct-1",
			OwnerName:  "Sajib",
			StudioName: "Moment Chronicles",
			Email:      "owner@example.com",
			Phone:      "01712345678",
			Role:       "Studio Owner",
			LogoURL:    "https://cdn/logo.png",
		}
		require.Equal(t, profile, profileToRow(profile).toModel())
	})
}

func TestEventRowMapping(t *testing.T) {
	t.Parallel()

	ev := models.LifeEvent{
		ID:          "ev-1",
		Title:       "Wedding shoot",
		Date:        "2024-07-10",
		Time:        "14:00",
		Category:    "Wedding",
		Description: "Full day coverage",
		ClientName:  "Rahim",
		ClientPhone: "01812345678",
		Location:    "Dhaka",
	}
	require.Equal(t, ev, eventToRow(ev).toModel())
}

func TestProfessionalRowMapping(t *testing.T) {
	t.Parallel()

	p := models.Professional{
		ID:        "pro-1",
		Name:      "Karim",
		Role:      "Cinematographer",
		Phone:     "01912345678",
		DailyRate: decimal.NewFromInt(8000),
		Portfolio: "https://example.com",
		Location:  "Chattogram",
	}
	require.Equal(t, p, professionalToRow(p).toModel())
}

func TestNormalizeInvoiceItems(t *testing.T) {
	t.Parallel()

	t.Run("nil column defaults to empty slice", func(t *testing.T) {
		t.Parallel()
		items, err := normalizeInvoiceItems(nil)
		require.NoError(t, err)
		require.NotNil(t, items)
		require.Empty(t, items)
	})

	t.Run("decodes items", func(t *testing.T) {
		t.Parallel()
		items, err := normalizeInvoiceItems([]byte(`[{"id":"1","description":"Wedding package","amount":"50000"}]`))
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.True(t, items[0].Amount.Equal(decimal.NewFromInt(50000)))
	})
}
