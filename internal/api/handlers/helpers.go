package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"trip-optimizer-service/internal/api/dto"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// writeError renders the uniform error shape: a human-readable message plus a
// details field carrying the underlying cause.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg, details string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg, Details: details})
}
