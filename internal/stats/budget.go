package stats

import (
	"github.com/shopspring/decimal"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// BudgetUsage is one category's consumption against its limit.
type BudgetUsage struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	// Percent is clamped to [0, 100] for progress bars; 0 when no limit is set.
	Percent float64
	IsOver  bool
}

// SpentByCategory sums EXPENSE transactions whose category matches exactly.
func SpentByCategory(transactions []models.Transaction, category string) decimal.Decimal {
	spent := decimal.Zero
	for _, tr := range transactions {
		if tr.Type == models.TransactionExpense && tr.Category == category {
			spent = spent.Add(tr.Amount)
		}
	}
	return spent
}

// BudgetReport derives consumption for the fixed budget category list.
// Spent is always recomputed from transactions; limits come from the
// locally held budgets.
func BudgetReport(transactions []models.Transaction, budgets []models.Budget) []BudgetUsage {
	limits := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		limits[b.Category] = b.Limit
	}

	report := make([]BudgetUsage, 0, len(models.BudgetCategories))
	for _, category := range models.BudgetCategories {
		limit := limits[category]
		spent := SpentByCategory(transactions, category)

		percent := 0.0
		if limit.IsPositive() {
			percent = spent.Div(limit).InexactFloat64() * 100
			if percent > 100 {
				percent = 100
			}
		}

		report = append(report, BudgetUsage{
			Category: category,
			Limit:    limit,
			Spent:    spent,
			Percent:  percent,
			IsOver:   limit.IsPositive() && spent.GreaterThan(limit),
		})
	}
	return report
}
