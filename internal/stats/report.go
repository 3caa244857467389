package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// WorkItem is one row of a report's merged work list.
type WorkItem struct {
	ID         string
	Title      string
	Type       string
	Client     string
	TotalValue decimal.Decimal
}

// Report is a financial and workload summary for an inclusive date range.
type Report struct {
	Start   string
	End     string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
	// TotalSavings is range-independent: the global sum of savings goal
	// balances at snapshot time.
	TotalSavings decimal.Decimal
	WorkCount    int
	Items        []WorkItem
}

// MonthRange returns the first and last day of now's calendar month.
func MonthRange(now time.Time) (string, string) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// TrailingRange returns the range covering the given number of months back
// from now, ending today.
func TrailingRange(now time.Time, months int) (string, string) {
	return now.AddDate(0, -months, 0).Format("2006-01-02"), now.Format("2006-01-02")
}

// BuildReport summarizes the snapshot for [start, end], both inclusive,
// compared as ISO date strings. Work counts projects with at least one
// payment dated in range plus events dated in range.
func BuildReport(
	transactions []models.Transaction,
	projects []models.Project,
	events []models.LifeEvent,
	savings []models.SavingsGoal,
	start, end string,
) Report {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tr := range transactions {
		if tr.Date < start || tr.Date > end {
			continue
		}
		switch tr.Type {
		case models.TransactionIncome:
			income = income.Add(tr.Amount)
		case models.TransactionExpense:
			expense = expense.Add(tr.Amount)
		}
	}

	var items []WorkItem
	for _, p := range projects {
		for _, pm := range p.Payments {
			if pm.Date >= start && pm.Date <= end {
				items = append(items, WorkItem{
					ID:         p.ID,
					Title:      p.Title,
					Type:       "Project",
					Client:     p.Client,
					TotalValue: p.TotalValue,
				})
				break
			}
		}
	}
	for _, ev := range events {
		if ev.Date >= start && ev.Date <= end {
			client := ev.ClientName
			if client == "" {
				client = "Guest"
			}
			items = append(items, WorkItem{
				ID:     ev.ID,
				Title:  ev.Title,
				Type:   "Event",
				Client: client,
			})
		}
	}

	totalSavings := decimal.Zero
	for _, goal := range savings {
		totalSavings = totalSavings.Add(goal.Current)
	}

	return Report{
		Start:        start,
		End:          end,
		Income:       income,
		Expense:      expense,
		Profit:       income.Sub(expense),
		TotalSavings: totalSavings,
		WorkCount:    len(items),
		Items:        items,
	}
}
