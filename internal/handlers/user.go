package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/Viccyace/faith-finance-reset/internal/models"
	"github.com/Viccyace/faith-finance-reset/internal/refdata"
	"github.com/Viccyace/faith-finance-reset/internal/util"
)

type UserHandler struct {
	db *sqlx.DB
}

func NewUserHandler(db *sqlx.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetMe returns the current user's profile
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var u models.User
	if err := h.db.Get(&u, `SELECT `+userColumns+` FROM users WHERE id=$1`, userID); err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type updateUserRequest struct {
	Onboarding bool    `json:"onboarding"`
	Name       *string `json:"name"`
	Country    *string `json:"country"`
	Currency   *string `json:"currency"`
	Timezone   *string `json:"timezone"`
	ResetGoal  *string `json:"resetGoal"`
}

// UpdateMe handles both the profile patch and the one-time onboarding
// payload. Onboarding is the only code path that creates a reset plan.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var body updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if body.Onboarding {
		h.onboard(w, userID, body)
		return
	}

	// Build dynamic update
	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1
	if body.Name != nil {
		if !util.ValidateName(strings.TrimSpace(*body.Name)) {
			writeError(w, http.StatusBadRequest, "Name must be at least 2 characters")
			return
		}
		setClauses = append(setClauses, "name=$"+itoa(argIdx))
		args = append(args, strings.TrimSpace(*body.Name))
		argIdx++
	}
	if body.Country != nil {
		setClauses = append(setClauses, "country=$"+itoa(argIdx))
		args = append(args, *body.Country)
		argIdx++
	}
	if body.Currency != nil {
		setClauses = append(setClauses, "currency=$"+itoa(argIdx))
		args = append(args, *body.Currency)
		argIdx++
	}
	if body.Timezone != nil {
		setClauses = append(setClauses, "timezone=$"+itoa(argIdx))
		args = append(args, *body.Timezone)
		argIdx++
	}
	if len(setClauses) == 0 {
		// Nothing to change; hand back the current profile.
		h.GetMe(w, r)
		return
	}
	setClauses = append(setClauses, "updated_at=NOW()")

	query := "UPDATE users SET " + join(setClauses, ", ") + " WHERE id=$" + itoa(argIdx) + " RETURNING " + userColumns
	args = append(args, userID)
	var u models.User
	if err := h.db.QueryRowx(query, args...).StructScan(&u); err != nil {
		writeError(w, http.StatusInternalServerError, "could not update")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) onboard(w http.ResponseWriter, userID int, body updateUserRequest) {
	if body.Country == nil || len(*body.Country) < 2 {
		writeError(w, http.StatusBadRequest, "Country is required")
		return
	}
	if body.Currency == nil || len(*body.Currency) < 3 {
		writeError(w, http.StatusBadRequest, "Currency is required")
		return
	}
	if body.Timezone == nil || *body.Timezone == "" {
		writeError(w, http.StatusBadRequest, "Timezone is required")
		return
	}
	if body.ResetGoal == nil || !refdata.ValidResetGoal(*body.ResetGoal) {
		writeError(w, http.StatusBadRequest, "Invalid reset goal")
		return
	}

	var u models.User
	err := h.db.QueryRowx(`UPDATE users SET country=$1, currency=$2, timezone=$3, reset_goal=$4, onboarding_complete=true, updated_at=NOW()
		WHERE id=$5 RETURNING `+userColumns,
		*body.Country, *body.Currency, *body.Timezone, *body.ResetGoal, userID).StructScan(&u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not update")
		return
	}

	// Exactly one plan per user. Re-running onboarding must never wipe
	// progress, so conflicts are ignored rather than overwritten.
	_, err = h.db.Exec(`INSERT INTO reset_plans (user_id, start_date) VALUES ($1, CURRENT_DATE)
		ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create reset plan")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword verifies the current hash before accepting the new secret.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var body changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.CurrentPassword == "" || !util.ValidatePassword(body.NewPassword) {
		writeError(w, http.StatusBadRequest, "Invalid password data")
		return
	}

	var hash string
	if err := h.db.Get(&hash, `SELECT password_hash FROM users WHERE id=$1`, userID); err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(body.CurrentPassword)) != nil {
		writeError(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	newHash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not hash password")
		return
	}
	if _, err := h.db.Exec(`UPDATE users SET password_hash=$1, updated_at=NOW() WHERE id=$2`, string(newHash), userID); err != nil {
		writeError(w, http.StatusInternalServerError, "could not update")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Minimal helpers to avoid bringing another package just for this
func itoa(i int) string { return fmt.Sprintf("%d", i) }
func join(parts []string, sep string) string {
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for i := 1; i < len(parts); i++ {
		out += sep + parts[i]
	}
	return out
}
