package handlers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viccyace/faith-finance-reset/internal/models"
)

func TestValidateBudgetFirstFailure(t *testing.T) {
	tests := []struct {
		name string
		req  budgetRequest
		want string
	}{
		{"month too low", budgetRequest{Month: 0, Year: 2025}, "Month must be between 1 and 12"},
		{"month too high", budgetRequest{Month: 13, Year: 2025}, "Month must be between 1 and 12"},
		{"year before floor", budgetRequest{Month: 5, Year: 2019}, "Year must be 2020 or later"},
		{
			"income missing label",
			budgetRequest{Month: 5, Year: 2025, Incomes: []models.IncomeSource{{Amount: decimal.NewFromInt(10), Currency: "USD"}}},
			"Income label is required",
		},
		{
			"income amount not positive",
			budgetRequest{Month: 5, Year: 2025, Incomes: []models.IncomeSource{{Label: "Salary", Currency: "USD"}}},
			"Income amount must be positive",
		},
		{
			"income currency too short",
			budgetRequest{Month: 5, Year: 2025, Incomes: []models.IncomeSource{{Label: "Salary", Amount: decimal.NewFromInt(10), Currency: "US"}}},
			"Income currency is required",
		},
		{
			"category missing name",
			budgetRequest{Month: 5, Year: 2025, Categories: []models.BudgetCategory{{PlannedAmount: decimal.NewFromInt(10)}}},
			"Category name is required",
		},
		{
			"negative planned amount",
			budgetRequest{Month: 5, Year: 2025, Categories: []models.BudgetCategory{{Name: "Food", PlannedAmount: decimal.NewFromInt(-1)}}},
			"Planned amount cannot be negative",
		},
		{"valid", budgetRequest{Month: 5, Year: 2025}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateBudget(&tt.req))
		})
	}
}

func TestValidateBudgetNormalizesOmittedArrays(t *testing.T) {
	// The upsert replaces the whole document, so arrays missing from the
	// payload must become empty lists rather than surviving from the stored
	// version.
	req := budgetRequest{Month: 3, Year: 2025}
	require.Empty(t, validateBudget(&req))
	assert.NotNil(t, req.Incomes)
	assert.Len(t, req.Incomes, 0)
	assert.NotNil(t, req.Categories)
	assert.Len(t, req.Categories, 0)
}

func TestValidateBudgetFillsCategoryDefaults(t *testing.T) {
	req := budgetRequest{
		Month: 3,
		Year:  2025,
		Categories: []models.BudgetCategory{
			{Name: "Food", PlannedAmount: decimal.NewFromInt(200)},
			{Name: "Rent", PlannedAmount: decimal.NewFromInt(900), Color: "#111111", Icon: "home"},
		},
	}
	require.Empty(t, validateBudget(&req))
	assert.Equal(t, "#2F6B4F", req.Categories[0].Color)
	assert.Equal(t, "circle", req.Categories[0].Icon)
	assert.Equal(t, "#111111", req.Categories[1].Color)
	assert.Equal(t, "home", req.Categories[1].Icon)
}

func TestValidateBudgetZeroPlannedAmountAllowed(t *testing.T) {
	req := budgetRequest{
		Month:      3,
		Year:       2025,
		Categories: []models.BudgetCategory{{Name: "Savings"}},
	}
	assert.Empty(t, validateBudget(&req))
}
