package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/Viccyace/faith-finance-reset/internal/models"
	"github.com/Viccyace/faith-finance-reset/internal/util"
)

type AuthHandler struct {
	db        *sqlx.DB
	jwtSecret []byte
}

func NewAuthHandler(db *sqlx.DB, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{db: db, jwtSecret: jwtSecret}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const userColumns = `id, email, password_hash, name, country, currency, timezone, plan, reset_goal, onboarding_complete, created_at, updated_at`

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !util.ValidateName(strings.TrimSpace(req.Name)) {
		writeError(w, http.StatusBadRequest, "Name must be at least 2 characters")
		return
	}
	if !util.ValidateEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if !util.ValidatePassword(req.Password) {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	// Emails are stored lowercased, so the unique index doubles as the
	// case-insensitive duplicate check.
	var exists bool
	if err := h.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`, req.Email); err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "Email already in use")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	var user models.User
	err = h.db.QueryRowx(`INSERT INTO users (email, password_hash, name) VALUES ($1, $2, $3) RETURNING `+userColumns,
		req.Email, string(hashed), strings.TrimSpace(req.Name)).StructScan(&user)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not create user")
		return
	}

	token, err := h.issueJWT(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"token": token, "user": user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	c.Email = strings.TrimSpace(strings.ToLower(c.Email))
	if c.Email == "" || c.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password required")
		return
	}

	var user models.User
	err := h.db.Get(&user, `SELECT `+userColumns+` FROM users WHERE email=$1`, c.Email)
	if err != nil {
		// Same response whether the email is unknown or the password is
		// wrong; nothing about other accounts leaks.
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(c.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := h.issueJWT(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}

func (h *AuthHandler) issueJWT(userID int) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
