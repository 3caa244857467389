// Package models defines the domain entities for the studio manager.
package models

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed for new transactions.
const DefaultCurrency = "BDT"

// SupportedCurrencies lists all supported currency codes.
var SupportedCurrencies = map[string]string{
	"BDT": "৳",
	"USD": "$",
}

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// ProjectStatus is the (loosely ordered) progression of a project.
type ProjectStatus string

const (
	ProjectQuoted    ProjectStatus = "QUOTED"
	ProjectBooked    ProjectStatus = "BOOKED"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectPaid      ProjectStatus = "PAID"
)

// ProjectType is the kind of shoot a project covers.
type ProjectType string

const (
	ProjectPhoto ProjectType = "PHOTO"
	ProjectVideo ProjectType = "VIDEO"
	ProjectBoth  ProjectType = "BOTH"
)

// TaskStatus tracks task progress.
type TaskStatus string

const (
	TaskPending  TaskStatus = "PENDING"
	TaskProgress TaskStatus = "PROGRESS"
	TaskFinished TaskStatus = "FINISHED"
)

// Task priorities.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Client relationship categories.
const (
	ClientLead     = "LEAD"
	ClientActive   = "ACTIVE"
	ClientPrevious = "PREVIOUS"
)

// Payment methods.
const (
	PaymentCash   = "CASH"
	PaymentBank   = "BANK"
	PaymentOnline = "ONLINE"
)

// ProfessionalRoles lists the team roles a professional can hold.
var ProfessionalRoles = []string{"Photographer", "Cinematographer", "Editor", "Assistant"}

// ExpenseCategories are the free-text suggestions offered when recording a transaction.
var ExpenseCategories = []string{"Shoot", "Videography", "Editing", "Gear", "Team", "Travel", "Other"}

// BudgetCategories is the fixed list the budget planner tracks.
var BudgetCategories = []string{
	"Gear Rental", "Assistant", "Travel", "Props",
	"Marketing", "Software", "Studio Rent", "Other",
}

// Profile is the singleton account record for a studio.
type Profile struct {
	ID         string
	OwnerName  string
	StudioName string
	Email      string
	Phone      string
	Role       string
	LogoURL    string
}

// Client is a studio customer or lead.
type Client struct {
	ID       string
	Name     string
	Phone    string
	Email    string
	Social   string
	Address  string
	Category string
}

// Professional is a team member available for hire.
type Professional struct {
	ID        string
	Name      string
	Role      string
	Phone     string
	DailyRate decimal.Decimal
	Portfolio string
	Location  string
}

// Payment is one instalment received against a project.
type Payment struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Method string          `json:"method"`
	Label  string          `json:"label"`
}

// Project is a booked (or quoted) job.
type Project struct {
	ID          string
	Title       string
	Client      string
	ClientPhone string
	Location    string
	Type        ProjectType
	Status      ProjectStatus
	TotalValue  decimal.Decimal
	Payments    []Payment
	Date        string
}

// PaidAmount is the sum of all payments received. This is the "paid"
// figure used everywhere a project balance is shown.
func (p *Project) PaidAmount() decimal.Decimal {
	total := decimal.Zero
	for _, pm := range p.Payments {
		total = total.Add(pm.Amount)
	}
	return total
}

// Transaction is one ledger entry. Date is an ISO calendar date string
// (YYYY-MM-DD); month buckets and report ranges compare these lexically.
type Transaction struct {
	ID          string
	ProjectID   string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Date        string
	Description string
	Currency    string
}

// Budget is a spending limit for one category. Spent is always derived
// from transactions, never persisted authoritatively.
type Budget struct {
	Category string
	Limit    decimal.Decimal
}

// SavingsGoal tracks manually incremented savings.
type SavingsGoal struct {
	ID       string
	Name     string
	Target   decimal.Decimal
	Current  decimal.Decimal
	Category string
}

// Task is a studio to-do item. Deadline is an ISO date string.
type Task struct {
	ID       string
	Title    string
	Deadline string
	Status   TaskStatus
	Priority string
}

// LifeEvent is a calendar entry (shoot day, delivery, meeting).
type LifeEvent struct {
	ID          string
	Title       string
	Date        string
	Time        string
	Category    string
	Description string
	ClientName  string
	ClientPhone string
	Location    string
}

// InvoiceParty identifies the sender or recipient on an invoice.
type InvoiceParty struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// InvoiceItem is one line on an invoice.
type InvoiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Schedule    string          `json:"schedule,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// SavedInvoice is a stored invoice document.
type SavedInvoice struct {
	ID        string
	ProjectID string
	Number    string
	Date      string
	Time      string
	Recipient InvoiceParty
	Company   InvoiceParty
	Items     []InvoiceItem
	Paid      decimal.Decimal
	Total     decimal.Decimal
}
