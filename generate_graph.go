//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sajibprobook-creator/lensfocus/internal/models"
	"github.com/sajibprobook-creator/lensfocus/internal/stats"
)

func main() {
	transactions := []models.Transaction{
		{Amount: decimal.NewFromInt(45000), Type: models.TransactionIncome, Date: "2026-01-05"},
		{Amount: decimal.NewFromInt(8000), Type: models.TransactionExpense, Date: "2026-01-07"},
		{Amount: decimal.NewFromInt(20000), Type: models.TransactionIncome, Date: "2026-01-14"},
		{Amount: decimal.NewFromInt(3500), Type: models.TransactionExpense, Date: "2026-01-14"},
		{Amount: decimal.NewFromInt(60000), Type: models.TransactionIncome, Date: "2026-01-23"},
	}

	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	series := stats.DailySeries(transactions, now)

	chartData, err := stats.RenderDailyChart(series, "January 2026")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("graph.png", chartData, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Chart written to graph.png")
}
