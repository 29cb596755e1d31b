package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/Viccyace/faith-finance-reset/internal/models"
	"github.com/Viccyace/faith-finance-reset/internal/util"
)

type PrayerHandler struct {
	db *sqlx.DB
}

func NewPrayerHandler(db *sqlx.DB) *PrayerHandler { return &PrayerHandler{db: db} }

const prayerGoalColumns = `id, user_id, month, year, title, notes, completed, linked_to_finance, weekly_checkins, created_at`
const prayerEntryColumns = `id, user_id, date, content, created_at`

// MaxGoalsPerMonth caps how many prayer goals one user may hold in a month.
const MaxGoalsPerMonth = 3

const prayerEntryListLimit = 30

// List serves both goal and journal reads, switched on ?type.
func (h *PrayerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	q := r.URL.Query()

	if q.Get("type") == "entries" {
		entries := []models.PrayerEntry{}
		err := h.db.Select(&entries, `SELECT `+prayerEntryColumns+` FROM prayer_entries
			WHERE user_id=$1 ORDER BY date DESC LIMIT $2`, userID, prayerEntryListLimit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not fetch entries")
			return
		}
		writeJSON(w, http.StatusOK, entries)
		return
	}

	query := `SELECT ` + prayerGoalColumns + ` FROM prayer_goals WHERE user_id=$1`
	args := []interface{}{userID}
	if q.Get("month") != "" && q.Get("year") != "" {
		month, year, err := monthYearParams(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		args = append(args, month, year)
		query += ` AND month=$2 AND year=$3`
	}
	query += ` ORDER BY created_at DESC`

	goals := []models.PrayerGoal{}
	if err := h.db.Select(&goals, query, args...); err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch goals")
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

type prayerGoalRequest struct {
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	Title           string  `json:"title"`
	Notes           *string `json:"notes"`
	LinkedToFinance bool    `json:"linkedToFinance"`
}

type prayerEntryRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// Create adds a goal or a journal entry, switched on ?type. The goal path
// enforces the per-month cap inside the insert itself so two simultaneous
// creates cannot both slip past a separate count check.
func (h *PrayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)

	if r.URL.Query().Get("type") == "entry" {
		var req prayerEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid body")
			return
		}
		if req.Content == "" {
			writeError(w, http.StatusBadRequest, "Content is required")
			return
		}
		date, err := util.ParseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date")
			return
		}
		var entry models.PrayerEntry
		err = h.db.QueryRowx(`INSERT INTO prayer_entries (user_id, date, content)
			VALUES ($1, $2, $3) RETURNING `+prayerEntryColumns, userID, date, req.Content).StructScan(&entry)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not save entry")
			return
		}
		writeJSON(w, http.StatusCreated, entry)
		return
	}

	var req prayerGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !util.ValidMonth(req.Month) {
		writeError(w, http.StatusBadRequest, "Month must be between 1 and 12")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	var goal models.PrayerGoal
	err := h.db.QueryRowx(`INSERT INTO prayer_goals (user_id, month, year, title, notes, linked_to_finance)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE (SELECT COUNT(*) FROM prayer_goals WHERE user_id=$1 AND month=$2 AND year=$3) < $7
		RETURNING `+prayerGoalColumns,
		userID, req.Month, req.Year, req.Title, req.Notes, req.LinkedToFinance, MaxGoalsPerMonth).StructScan(&goal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusConflict, "Maximum 3 prayer goals per month")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not save goal")
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

type prayerGoalUpdate struct {
	Title           *string                `json:"title"`
	Notes           *string                `json:"notes"`
	Completed       *bool                  `json:"completed"`
	LinkedToFinance *bool                  `json:"linkedToFinance"`
	WeeklyCheckins  *models.WeeklyCheckins `json:"weeklyCheckins"`
}

// UpdateGoal patches an owned goal. A valid id owned by someone else reads
// as not found.
func (h *PrayerHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID required")
		return
	}
	var body prayerGoalUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1
	if body.Title != nil {
		if *body.Title == "" {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}
		setClauses = append(setClauses, "title=$"+itoa(argIdx))
		args = append(args, *body.Title)
		argIdx++
	}
	if body.Notes != nil {
		setClauses = append(setClauses, "notes=$"+itoa(argIdx))
		args = append(args, *body.Notes)
		argIdx++
	}
	if body.Completed != nil {
		setClauses = append(setClauses, "completed=$"+itoa(argIdx))
		args = append(args, *body.Completed)
		argIdx++
	}
	if body.LinkedToFinance != nil {
		setClauses = append(setClauses, "linked_to_finance=$"+itoa(argIdx))
		args = append(args, *body.LinkedToFinance)
		argIdx++
	}
	if body.WeeklyCheckins != nil {
		setClauses = append(setClauses, "weekly_checkins=$"+itoa(argIdx))
		args = append(args, *body.WeeklyCheckins)
		argIdx++
	}
	if len(setClauses) == 0 {
		writeError(w, http.StatusBadRequest, "No updatable fields provided")
		return
	}

	query := "UPDATE prayer_goals SET " + join(setClauses, ", ") +
		" WHERE id=$" + itoa(argIdx) + " AND user_id=$" + itoa(argIdx+1) +
		" RETURNING " + prayerGoalColumns
	args = append(args, id, userID)

	var goal models.PrayerGoal
	if err := h.db.QueryRowx(query, args...).StructScan(&goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not update goal")
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// Delete removes an owned goal or entry; missing ids are a silent success.
func (h *PrayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID required")
		return
	}
	table := "prayer_goals"
	if r.URL.Query().Get("type") == "entry" {
		table = "prayer_entries"
	}
	if _, err := h.db.Exec(`DELETE FROM `+table+` WHERE id=$1 AND user_id=$2`, id, userID); err != nil {
		writeError(w, http.StatusInternalServerError, "could not delete")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
