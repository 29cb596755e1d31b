package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes v as the response body. A nil v serializes to JSON null,
// which is how "no data yet" reads (missing budget, missing reset plan) come
// back.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError sends the {"error": msg} envelope every failure path uses.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
