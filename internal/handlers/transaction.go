package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Viccyace/faith-finance-reset/internal/db"
	"github.com/Viccyace/faith-finance-reset/internal/models"
	"github.com/Viccyace/faith-finance-reset/internal/report"
	"github.com/Viccyace/faith-finance-reset/internal/util"
)

type TransactionHandler struct {
	db *sqlx.DB
}

func NewTransactionHandler(db *sqlx.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

const transactionColumns = `id, user_id, type, amount, currency, category_name, date, note, created_at`

const defaultListLimit = 100

type transactionRequest struct {
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	CategoryName *string         `json:"categoryName"`
	Date         string          `json:"date"`
	Note         *string         `json:"note"`
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !util.OneOf(req.Type, "income", "expense") {
		writeError(w, http.StatusBadRequest, "Invalid transaction type")
		return
	}
	if !req.Amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	if len(req.Currency) < 3 {
		writeError(w, http.StatusBadRequest, "Currency is required")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	var tx models.Transaction
	err = h.db.QueryRowx(`INSERT INTO transactions (user_id, type, amount, currency, category_name, date, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+transactionColumns,
		userID, req.Type, req.Amount, req.Currency, req.CategoryName, date, req.Note).StructScan(&tx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not save transaction")
		return
	}
	db.ClearUserReportCache(userID)
	writeJSON(w, http.StatusCreated, tx)
}

// List returns the owner's transactions newest-first, optionally windowed to
// a month and capped at a caller-supplied limit.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	q := r.URL.Query()

	limit := defaultListLimit
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id=$1`
	args := []interface{}{userID}

	if q.Get("month") != "" && q.Get("year") != "" {
		month, year, err := monthYearParams(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		start, end := report.MonthWindow(month, year)
		args = append(args, start, end)
		query += ` AND date >= $2 AND date <= $3`
	}
	args = append(args, limit)
	query += ` ORDER BY date DESC LIMIT $` + itoa(len(args))

	txs := []models.Transaction{}
	if err := h.db.Select(&txs, query, args...); err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch transactions")
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

// Delete is owner-scoped and idempotent: deleting an id that is missing or
// belongs to someone else is a silent success.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID required")
		return
	}
	if _, err := h.db.Exec(`DELETE FROM transactions WHERE id=$1 AND user_id=$2`, id, userID); err != nil {
		writeError(w, http.StatusInternalServerError, "could not delete")
		return
	}
	db.ClearUserReportCache(userID)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
