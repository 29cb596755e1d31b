package handlers

import (
	"net/http"

	"github.com/Viccyace/faith-finance-reset/internal/refdata"
	"github.com/Viccyace/faith-finance-reset/internal/reset"
)

// ReferenceHandler serves the static catalogs the client renders pickers
// from. No storage, no auth-sensitive data.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler { return &ReferenceHandler{} }

func (h *ReferenceHandler) Countries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, refdata.Countries)
}

func (h *ReferenceHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, refdata.Currencies)
}

func (h *ReferenceHandler) Goals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, refdata.ResetGoals)
}

func (h *ReferenceHandler) DefaultCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, refdata.DefaultCategories)
}

func (h *ReferenceHandler) Scriptures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, refdata.Scriptures)
}

func (h *ReferenceHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, reset.Tasks)
}
