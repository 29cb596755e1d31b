package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Viccyace/faith-finance-reset/internal/models"
	"github.com/Viccyace/faith-finance-reset/internal/refdata"
	"github.com/Viccyace/faith-finance-reset/internal/reset"
)

type ResetHandler struct {
	db *sqlx.DB
}

func NewResetHandler(db *sqlx.DB) *ResetHandler { return &ResetHandler{db: db} }

const resetPlanColumns = `id, user_id, start_date, completed_task_ids, streak, last_completed_date, weekly_reflections, created_at`

func (h *ResetHandler) getPlan(userID int) (models.ResetPlan, error) {
	var plan models.ResetPlan
	err := h.db.Get(&plan, `SELECT `+resetPlanColumns+` FROM reset_plans WHERE user_id=$1`, userID)
	return plan, err
}

// Get returns the owner's plan, or null before onboarding has created one.
// Absence is a normal state, not an error.
func (h *ResetHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	plan, err := h.getPlan(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "could not fetch plan")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

type todayResponse struct {
	Day            int               `json:"day"`
	DayIndex       int               `json:"dayIndex"`
	Task           reset.Task        `json:"task"`
	Scripture      refdata.Scripture `json:"scripture"`
	Streak         int               `json:"streak"`
	TotalCompleted int               `json:"totalCompleted"`
}

// Today derives the active task and daily scripture. Works before onboarding
// too: with no plan the program simply starts at day one with no streak.
func (h *ResetHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)

	var completed models.StringList
	streak := 0
	if plan, err := h.getPlan(userID); err == nil {
		completed = plan.CompletedTaskIDs
		streak = plan.Streak
	} else if !errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusInternalServerError, "could not fetch plan")
		return
	}

	var goal string
	if err := h.db.Get(&goal, `SELECT reset_goal FROM users WHERE id=$1`, userID); err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch user")
		return
	}

	dayIndex := reset.DayIndex(completed)
	writeJSON(w, http.StatusOK, todayResponse{
		Day:            reset.DayNumber(dayIndex),
		DayIndex:       dayIndex,
		Task:           reset.TaskForDayIndex(dayIndex),
		Scripture:      refdata.DailyScripture(goal, dayIndex),
		Streak:         streak,
		TotalCompleted: len(completed),
	})
}

type reflectionRequest struct {
	Week       int    `json:"week"`
	Wins       string `json:"wins"`
	Challenges string `json:"challenges"`
	NextSteps  string `json:"nextSteps"`
}

// resetUpdateRequest is the closed set of plan mutations: complete a task,
// append a weekly reflection, or patch the whitelisted fields. Unknown
// fields are rejected at decode time.
type resetUpdateRequest struct {
	CompleteTask     bool               `json:"completeTask"`
	TaskID           string             `json:"taskId"`
	WeeklyReflection bool               `json:"weeklyReflection"`
	Reflection       *reflectionRequest `json:"reflection"`
	StartDate        *string            `json:"startDate"`
	Streak           *int               `json:"streak"`
}

func (h *ResetHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req resetUpdateRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	switch {
	case req.CompleteTask:
		h.completeTask(w, userID, req.TaskID)
	case req.WeeklyReflection:
		h.addReflection(w, userID, req.Reflection)
	default:
		h.patchPlan(w, userID, req)
	}
}

// completeTask is idempotent and race-safe: the append is one conditional
// UPDATE guarded on set membership, so the same task id can never be added
// twice even by concurrent calls.
func (h *ResetHandler) completeTask(w http.ResponseWriter, userID int, taskID string) {
	if _, ok := reset.TaskByID(taskID); !ok {
		writeError(w, http.StatusBadRequest, "Unknown task")
		return
	}

	plan, err := h.getPlan(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "No plan found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not fetch plan")
		return
	}
	if plan.CompletedTaskIDs.Contains(taskID) {
		writeJSON(w, http.StatusOK, plan)
		return
	}

	now := time.Now()
	newStreak := reset.NextStreak(plan.Streak, plan.LastCompletedDate, now)
	element, _ := json.Marshal([]string{taskID})

	var updated models.ResetPlan
	err = h.db.QueryRowx(`UPDATE reset_plans
		SET completed_task_ids = completed_task_ids || $2::jsonb,
		    streak = $3,
		    last_completed_date = $4
		WHERE user_id = $1 AND NOT (completed_task_ids @> $2::jsonb)
		RETURNING `+resetPlanColumns,
		userID, string(element), newStreak, reset.Midnight(now)).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A concurrent call won the append; report the state it left.
			if plan, err = h.getPlan(userID); err == nil {
				writeJSON(w, http.StatusOK, plan)
				return
			}
		}
		writeError(w, http.StatusInternalServerError, "could not update plan")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// addReflection appends to the reflection list; prior entries are never
// edited or removed.
func (h *ResetHandler) addReflection(w http.ResponseWriter, userID int, r *reflectionRequest) {
	if r == nil || r.Week < 1 {
		writeError(w, http.StatusBadRequest, "Reflection week is required")
		return
	}
	entry, _ := json.Marshal([]models.WeeklyReflection{{
		Week:        r.Week,
		Wins:        r.Wins,
		Challenges:  r.Challenges,
		NextSteps:   r.NextSteps,
		CompletedAt: time.Now(),
	}})

	var updated models.ResetPlan
	err := h.db.QueryRowx(`UPDATE reset_plans
		SET weekly_reflections = weekly_reflections || $2::jsonb
		WHERE user_id = $1
		RETURNING `+resetPlanColumns, userID, string(entry)).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "No plan found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not update plan")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// patchPlan merges the whitelisted administrative fields. It never touches
// the streak logic or the completed set.
func (h *ResetHandler) patchPlan(w http.ResponseWriter, userID int, req resetUpdateRequest) {
	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1
	if req.StartDate != nil {
		start, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid startDate; expected YYYY-MM-DD")
			return
		}
		setClauses = append(setClauses, "start_date=$"+itoa(argIdx))
		args = append(args, start)
		argIdx++
	}
	if req.Streak != nil {
		if *req.Streak < 0 {
			writeError(w, http.StatusBadRequest, "streak cannot be negative")
			return
		}
		setClauses = append(setClauses, "streak=$"+itoa(argIdx))
		args = append(args, *req.Streak)
		argIdx++
	}
	if len(setClauses) == 0 {
		writeError(w, http.StatusBadRequest, "No updatable fields provided")
		return
	}

	query := "UPDATE reset_plans SET " + join(setClauses, ", ") +
		" WHERE user_id=$" + itoa(argIdx) + " RETURNING " + resetPlanColumns
	args = append(args, userID)

	var updated models.ResetPlan
	if err := h.db.QueryRowx(query, args...).StructScan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "No plan found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not update plan")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
