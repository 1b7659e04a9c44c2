package store

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
)

// recurringThreshold is how many times an expense label must repeat
// before it counts as an "ant expense".
const recurringThreshold = 5

// LedgerSummary aggregates the ledger for the dashboard header.
type LedgerSummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// RecurringExpense is a group of repeated small expenses.
type RecurringExpense struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// RecurringReport summarizes ant expenses across the ledger.
type RecurringReport struct {
	Total decimal.Decimal   `json:"total"`
	Top   *RecurringExpense `json:"top"`
}

// TrendPoint is one month in the patrimony trend series.
type TrendPoint struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Summary totals the ledger's income and expenses.
func (r *Repository) Summary() LedgerSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s LedgerSummary
	for _, t := range r.transactions {
		if t.Kind == models.KindIncome {
			s.Income = s.Income.Add(t.Amount)
		} else {
			s.Expenses = s.Expenses.Add(t.Amount.Abs())
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// RecurringExpenses groups expenses by their base label (the text
// before any " (category)" suffix) and reports the groups that repeat
// at least recurringThreshold times, plus the most frequent one.
func (r *Repository) RecurringExpenses() RecurringReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	type bucket struct {
		total decimal.Decimal
		count int
	}
	buckets := make(map[string]*bucket)
	for _, t := range r.transactions {
		if t.Kind != models.KindExpense {
			continue
		}
		label := baseLabel(t.CounterpartyLabel)
		b, ok := buckets[label]
		if !ok {
			b = &bucket{}
			buckets[label] = b
		}
		b.total = b.total.Add(t.Amount.Abs())
		b.count++
	}

	var groups []RecurringExpense
	for label, b := range buckets {
		if b.count >= recurringThreshold {
			groups = append(groups, RecurringExpense{Label: label, Total: b.total, Count: b.count})
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })

	report := RecurringReport{Total: decimal.Zero}
	for i := range groups {
		report.Total = report.Total.Add(groups[i].Total)
	}
	if len(groups) > 0 {
		report.Top = &groups[0]
	}
	return report
}

// trendBase is the fixed history shown before the live month.
var trendBase = []TrendPoint{
	{Month: "Ene", Income: decimal.NewFromInt(12000), Expenses: decimal.NewFromInt(8000)},
	{Month: "Feb", Income: decimal.NewFromInt(15500), Expenses: decimal.NewFromInt(9200)},
	{Month: "Mar", Income: decimal.NewFromInt(13000), Expenses: decimal.NewFromInt(11500)},
	{Month: "Abr", Income: decimal.NewFromInt(19000), Expenses: decimal.NewFromInt(7500)},
	{Month: "May", Income: decimal.NewFromInt(21000), Expenses: decimal.NewFromInt(12800)},
}

// Trend returns the five fixed history months plus the current month
// aggregated from the live ledger.
func (r *Repository) Trend() []TrendPoint {
	s := r.Summary()
	out := append([]TrendPoint(nil), trendBase...)
	return append(out, TrendPoint{Month: "Jun", Income: s.Income, Expenses: s.Expenses})
}

// baseLabel strips the " (category)" suffix appended by the dashboard
// form and normalizes case so repeated purchases group together.
func baseLabel(label string) string {
	if i := strings.Index(label, " ("); i >= 0 {
		label = label[:i]
	}
	return strings.ToLower(strings.TrimSpace(label))
}
