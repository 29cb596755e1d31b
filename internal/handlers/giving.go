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

type GivingHandler struct {
	db *sqlx.DB
}

func NewGivingHandler(db *sqlx.DB) *GivingHandler { return &GivingHandler{db: db} }

const givingColumns = `id, user_id, amount, currency, date, giving_type, note, created_at`

const givingListLimit = 100

type givingRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Date       string          `json:"date"`
	GivingType string          `json:"givingType"`
	Note       *string         `json:"note"`
}

func (h *GivingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req givingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
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
	if !util.OneOf(req.GivingType, "tithe", "offering", "seed", "charity") {
		writeError(w, http.StatusBadRequest, "Invalid giving type")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	var entry models.GivingEntry
	err = h.db.QueryRowx(`INSERT INTO giving_entries (user_id, amount, currency, date, giving_type, note)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+givingColumns,
		userID, req.Amount, req.Currency, date, req.GivingType, req.Note).StructScan(&entry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not save giving entry")
		return
	}
	db.ClearUserReportCache(userID)
	writeJSON(w, http.StatusCreated, entry)
}

func (h *GivingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	q := r.URL.Query()

	query := `SELECT ` + givingColumns + ` FROM giving_entries WHERE user_id=$1`
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
	args = append(args, givingListLimit)
	query += ` ORDER BY date DESC LIMIT $` + itoa(len(args))

	entries := []models.GivingEntry{}
	if err := h.db.Select(&entries, query, args...); err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch giving entries")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *GivingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID required")
		return
	}
	if _, err := h.db.Exec(`DELETE FROM giving_entries WHERE id=$1 AND user_id=$2`, id, userID); err != nil {
		writeError(w, http.StatusInternalServerError, "could not delete")
		return
	}
	db.ClearUserReportCache(userID)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
