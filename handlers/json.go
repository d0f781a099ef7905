package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/NITHIN-BHAT/MedGPT/logging"
)

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response
func RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]interface{}{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	RespondWithJSON(w, code, errorResponse)
}
