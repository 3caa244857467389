package stats

import (
	"fmt"
	"strconv"

	"github.com/go-analyze/charts"
)

// RenderDailyChart draws the month's income/expense series as a line chart.
// Returns PNG image bytes.
func RenderDailyChart(series []DayTotal, monthLabel string) ([]byte, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no daily series to chart")
	}

	income := make([]float64, len(series))
	expense := make([]float64, len(series))
	days := make([]string, len(series))
	for i, day := range series {
		income[i] = day.Income.InexactFloat64()
		expense[i] = day.Expense.InexactFloat64()
		days[i] = strconv.Itoa(day.Day)
	}

	p, err := charts.LineRender(
		[][]float64{income, expense},
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Daily Performance - %s", monthLabel),
		}),
		charts.XAxisLabelsOptionFunc(days),
		charts.LegendLabelsOptionFunc([]string{"Income", "Expense"}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}
