package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/Viccyace/faith-finance-reset/internal/db"
	"github.com/Viccyace/faith-finance-reset/internal/models"
	"github.com/Viccyace/faith-finance-reset/internal/report"
)

type ReportHandler struct {
	db *sqlx.DB
}

func NewReportHandler(db *sqlx.DB) *ReportHandler { return &ReportHandler{db: db} }

// Get aggregates one calendar month of the owner's transactions and giving.
// A pure read: nothing is mutated, and the result is memoized until the
// owner's next write. Amounts are summed raw across currencies; whether
// mixed-currency months should convert instead is an open product question.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	month, year, err := monthYearParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if cached, ok := db.GetReportCache(userID, month, year); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	start, end := report.MonthWindow(month, year)

	txs := []models.Transaction{}
	if err := h.db.Select(&txs, `SELECT `+transactionColumns+` FROM transactions
		WHERE user_id=$1 AND date >= $2 AND date <= $3`, userID, start, end); err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch transactions")
		return
	}
	givings := []models.GivingEntry{}
	if err := h.db.Select(&givings, `SELECT `+givingColumns+` FROM giving_entries
		WHERE user_id=$1 AND date >= $2 AND date <= $3`, userID, start, end); err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch giving entries")
		return
	}

	monthly := report.Build(month, year, txs, givings)
	db.SetReportCache(userID, month, year, monthly)
	writeJSON(w, http.StatusOK, monthly)
}
