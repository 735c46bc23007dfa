package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a game, history or health payload with the given status
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}
