// Package stats derives dashboard and report metrics from the snapshot.
// Everything here is pure: same inputs, same outputs, no side effects, so
// callers recompute freely on every read.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
)

// MonthSummary is the current calendar month's financial position.
type MonthSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// MonthlySummary buckets transactions into now's calendar month by ISO
// year-month prefix. A malformed date simply never matches the prefix and
// falls out of the bucket; that is not an error.
func MonthlySummary(transactions []models.Transaction, now time.Time) MonthSummary {
	prefix := now.Format("2006-01")
	income := decimal.Zero
	expense := decimal.Zero
	for _, tr := range transactions {
		if !strings.HasPrefix(tr.Date, prefix) {
			continue
		}
		switch tr.Type {
		case models.TransactionIncome:
			income = income.Add(tr.Amount)
		case models.TransactionExpense:
			expense = expense.Add(tr.Amount)
		}
	}
	return MonthSummary{Income: income, Expense: expense, Net: income.Sub(expense)}
}

// DayTotal is one day's income and expense for the daily chart.
type DayTotal struct {
	Day     int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DailySeries produces one entry per calendar day of now's month, in
// ascending day order. Days without transactions yield zeros, never gaps.
func DailySeries(transactions []models.Transaction, now time.Time) []DayTotal {
	prefix := now.Format("2006-01")
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	series := make([]DayTotal, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		total := DayTotal{Day: day, Income: decimal.Zero, Expense: decimal.Zero}
		dayStr := fmt.Sprintf("%s-%02d", prefix, day)
		for _, tr := range transactions {
			if tr.Date != dayStr {
				continue
			}
			switch tr.Type {
			case models.TransactionIncome:
				total.Income = total.Income.Add(tr.Amount)
			case models.TransactionExpense:
				total.Expense = total.Expense.Add(tr.Amount)
			}
		}
		series[day-1] = total
	}
	return series
}

// ActiveProjectCount counts projects not yet fully paid out.
func ActiveProjectCount(projects []models.Project) int {
	count := 0
	for _, p := range projects {
		if p.Status != models.ProjectPaid {
			count++
		}
	}
	return count
}

// PendingTaskCount counts tasks that are not finished.
func PendingTaskCount(tasks []models.Task) int {
	count := 0
	for _, t := range tasks {
		if t.Status != models.TaskFinished {
			count++
		}
	}
	return count
}

// UrgentTasks returns the three unfinished tasks with the nearest
// deadlines, ascending. The sort is stable so ties keep collection order.
func UrgentTasks(tasks []models.Task) []models.Task {
	pending := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != models.TaskFinished {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Deadline < pending[j].Deadline
	})
	if len(pending) > 3 {
		pending = pending[:3]
	}
	return pending
}

// NextEvent returns the earliest event on or after today, ordering by the
// compound (date, time) key. ok is false when none qualify.
func NextEvent(events []models.LifeEvent, now time.Time) (models.LifeEvent, bool) {
	today := now.Format("2006-01-02")
	var next models.LifeEvent
	found := false
	for _, ev := range events {
		if ev.Date < today {
			continue
		}
		if !found || ev.Date < next.Date || (ev.Date == next.Date && ev.Time < next.Time) {
			next = ev
			found = true
		}
	}
	return next, found
}
