// Package report aggregates a user's transactions and giving entries for one
// calendar month. Pure computation over already-fetched rows; it never
// touches storage.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Viccyace/faith-finance-reset/internal/models"
)

// Uncategorized labels expense transactions with no category name.
const Uncategorized = "Uncategorized"

// TopCategoryLimit caps the category breakdown.
const TopCategoryLimit = 5

type CategoryTotal struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type Monthly struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Net              decimal.Decimal `json:"net"`
	Giving           decimal.Decimal `json:"giving"`
	TopCategories    []CategoryTotal `json:"topCategories"`
	TransactionCount int             `json:"transactionCount"`
	GivingCount      int             `json:"givingCount"`
}

// MonthWindow returns the inclusive bounds of a calendar month: first instant
// of day one through 23:59:59 on the last day, in the server's location.
func MonthWindow(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// Build rolls the month's rows into totals and the top expense categories.
// Amounts are summed as raw numbers whatever currency each row carries; the
// engine deliberately does no conversion.
func Build(month, year int, txs []models.Transaction, givings []models.GivingEntry) Monthly {
	m := Monthly{
		Month:            month,
		Year:             year,
		TransactionCount: len(txs),
		GivingCount:      len(givings),
		TopCategories:    []CategoryTotal{},
	}

	// Group expense amounts by category, remembering first-encounter order so
	// equal totals keep a stable ranking.
	byCategory := map[string]decimal.Decimal{}
	var order []string
	for _, t := range txs {
		switch t.Type {
		case "income":
			m.Income = m.Income.Add(t.Amount)
		case "expense":
			m.Expenses = m.Expenses.Add(t.Amount)
			name := Uncategorized
			if t.CategoryName != nil && *t.CategoryName != "" {
				name = *t.CategoryName
			}
			if _, seen := byCategory[name]; !seen {
				order = append(order, name)
			}
			byCategory[name] = byCategory[name].Add(t.Amount)
		}
	}
	m.Net = m.Income.Sub(m.Expenses)

	for _, g := range givings {
		m.Giving = m.Giving.Add(g.Amount)
	}

	// Descending by amount; insertion sort keeps ties in encounter order.
	ranked := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		ct := CategoryTotal{Name: name, Amount: byCategory[name]}
		pos := len(ranked)
		for pos > 0 && ranked[pos-1].Amount.LessThan(ct.Amount) {
			pos--
		}
		ranked = append(ranked, CategoryTotal{})
		copy(ranked[pos+1:], ranked[pos:])
		ranked[pos] = ct
	}
	if len(ranked) > TopCategoryLimit {
		ranked = ranked[:TopCategoryLimit]
	}
	m.TopCategories = ranked

	return m
}
