package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viccyace/faith-finance-reset/internal/models"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func expense(category string, amount int64) models.Transaction {
	tx := models.Transaction{Type: "expense", Amount: dec(amount)}
	if category != "" {
		tx.CategoryName = &category
	}
	return tx
}

func income(amount int64) models.Transaction {
	return models.Transaction{Type: "income", Amount: dec(amount)}
}

func TestBuildMarchExample(t *testing.T) {
	txs := []models.Transaction{
		expense("Food", 50),
		expense("Food", 30),
		income(1000),
	}

	m := Build(3, 2025, txs, nil)

	assert.Equal(t, 3, m.Month)
	assert.Equal(t, 2025, m.Year)
	assert.True(t, m.Income.Equal(dec(1000)), "income %s", m.Income)
	assert.True(t, m.Expenses.Equal(dec(80)), "expenses %s", m.Expenses)
	assert.True(t, m.Net.Equal(dec(920)), "net %s", m.Net)
	assert.True(t, m.Giving.IsZero())
	assert.Equal(t, 3, m.TransactionCount)
	assert.Equal(t, 0, m.GivingCount)

	require.Len(t, m.TopCategories, 1)
	assert.Equal(t, "Food", m.TopCategories[0].Name)
	assert.True(t, m.TopCategories[0].Amount.Equal(dec(80)))
}

func TestBuildGivingSum(t *testing.T) {
	givings := []models.GivingEntry{
		{Amount: dec(100), GivingType: "tithe"},
		{Amount: dec(25), GivingType: "offering"},
	}
	m := Build(6, 2025, nil, givings)
	assert.True(t, m.Giving.Equal(dec(125)))
	assert.Equal(t, 2, m.GivingCount)
	assert.Empty(t, m.TopCategories)
}

func TestBuildUncategorizedLabel(t *testing.T) {
	empty := ""
	txs := []models.Transaction{
		{Type: "expense", Amount: dec(10)},
		{Type: "expense", Amount: dec(5), CategoryName: &empty},
	}
	m := Build(1, 2025, txs, nil)
	require.Len(t, m.TopCategories, 1)
	assert.Equal(t, Uncategorized, m.TopCategories[0].Name)
	assert.True(t, m.TopCategories[0].Amount.Equal(dec(15)))
}

func TestBuildTopFiveOrdering(t *testing.T) {
	txs := []models.Transaction{
		expense("A", 10),
		expense("B", 50),
		expense("C", 30),
		expense("D", 40),
		expense("E", 20),
		expense("F", 5),
		expense("G", 60),
	}
	m := Build(1, 2025, txs, nil)

	require.Len(t, m.TopCategories, TopCategoryLimit)
	names := make([]string, len(m.TopCategories))
	for i, c := range m.TopCategories {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"G", "B", "D", "C", "E"}, names)
}

func TestBuildTiesKeepEncounterOrder(t *testing.T) {
	txs := []models.Transaction{
		expense("Transport", 20),
		expense("Food", 20),
		expense("Utilities", 20),
	}
	m := Build(1, 2025, txs, nil)

	require.Len(t, m.TopCategories, 3)
	assert.Equal(t, "Transport", m.TopCategories[0].Name)
	assert.Equal(t, "Food", m.TopCategories[1].Name)
	assert.Equal(t, "Utilities", m.TopCategories[2].Name)
}

func TestBuildIsPure(t *testing.T) {
	txs := []models.Transaction{expense("Food", 50), income(100)}
	givings := []models.GivingEntry{{Amount: dec(10)}}

	first := Build(4, 2025, txs, givings)
	second := Build(4, 2025, txs, givings)
	assert.Equal(t, first, second, "identical inputs yield identical output")

	// Inputs stay untouched.
	assert.True(t, txs[0].Amount.Equal(dec(50)))
	assert.True(t, givings[0].Amount.Equal(dec(10)))
}

func TestBuildMixedCurrenciesSumRaw(t *testing.T) {
	// Deliberately no conversion: a USD 50 and a EUR 30 expense sum to 80.
	txs := []models.Transaction{
		{Type: "expense", Amount: dec(50), Currency: "USD"},
		{Type: "expense", Amount: dec(30), Currency: "EUR"},
	}
	m := Build(2, 2025, txs, nil)
	assert.True(t, m.Expenses.Equal(dec(80)))
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(3, 2025)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, time.March, 31, 23, 59, 59, 0, time.Local), end)

	// February in a leap year.
	start, end = MonthWindow(2, 2024)
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 29, end.Day())

	// December rolls the year correctly.
	_, end = MonthWindow(12, 2025)
	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 0, time.Local), end)
}
