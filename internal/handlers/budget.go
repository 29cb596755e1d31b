package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Viccyace/faith-finance-reset/internal/models"
	"github.com/Viccyace/faith-finance-reset/internal/util"
)

type BudgetHandler struct {
	db *sqlx.DB
}

func NewBudgetHandler(db *sqlx.DB) *BudgetHandler { return &BudgetHandler{db: db} }

const budgetColumns = `id, user_id, month, year, incomes, categories, created_at, updated_at`

// monthYearParams reads month/year query params, defaulting to the current
// calendar month.
func monthYearParams(r *http.Request) (int, int, error) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()
	var err error
	if s := r.URL.Query().Get("month"); s != "" {
		if month, err = strconv.Atoi(s); err != nil {
			return 0, 0, errors.New("Invalid month")
		}
	}
	if s := r.URL.Query().Get("year"); s != "" {
		if year, err = strconv.Atoi(s); err != nil {
			return 0, 0, errors.New("Invalid year")
		}
	}
	if !util.ValidMonth(month) {
		return 0, 0, errors.New("Invalid month")
	}
	return month, year, nil
}

// Get returns the owner's budget for a month, or null when none exists yet.
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	month, year, err := monthYearParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var b models.BudgetMonth
	err = h.db.Get(&b, `SELECT `+budgetColumns+` FROM budget_months WHERE user_id=$1 AND month=$2 AND year=$3`, userID, month, year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "could not fetch budget")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type budgetRequest struct {
	Month      int                     `json:"month"`
	Year       int                     `json:"year"`
	Incomes    []models.IncomeSource   `json:"incomes"`
	Categories []models.BudgetCategory `json:"categories"`
}

// validateBudget checks the payload and fills category defaults, returning
// the first failure message. Omitted arrays normalize to empty lists since an
// upsert replaces the whole document.
func validateBudget(req *budgetRequest) string {
	if !util.ValidMonth(req.Month) {
		return "Month must be between 1 and 12"
	}
	if !util.ValidBudgetYear(req.Year) {
		return "Year must be 2020 or later"
	}
	if req.Incomes == nil {
		req.Incomes = []models.IncomeSource{}
	}
	if req.Categories == nil {
		req.Categories = []models.BudgetCategory{}
	}
	for _, in := range req.Incomes {
		if in.Label == "" {
			return "Income label is required"
		}
		if !in.Amount.IsPositive() {
			return "Income amount must be positive"
		}
		if len(in.Currency) < 3 {
			return "Income currency is required"
		}
	}
	for i := range req.Categories {
		c := &req.Categories[i]
		if c.Name == "" {
			return "Category name is required"
		}
		if c.PlannedAmount.IsNegative() {
			return "Planned amount cannot be negative"
		}
		if c.Color == "" {
			c.Color = "#2F6B4F"
		}
		if c.Icon == "" {
			c.Icon = "circle"
		}
	}
	return ""
}

// Upsert replaces the whole budget document for (owner, month, year). It
// never merges: arrays missing from the payload end up empty.
func (h *BudgetHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if msg := validateBudget(&req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var b models.BudgetMonth
	err := h.db.QueryRowx(`INSERT INTO budget_months (user_id, month, year, incomes, categories)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, month, year)
		DO UPDATE SET incomes = EXCLUDED.incomes, categories = EXCLUDED.categories, updated_at = NOW()
		RETURNING `+budgetColumns,
		userID, req.Month, req.Year, models.IncomeSources(req.Incomes), models.BudgetCategories(req.Categories)).StructScan(&b)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not save budget")
		return
	}
	writeJSON(w, http.StatusOK, b)
}
