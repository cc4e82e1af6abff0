package api

import (
	"encoding/json"
	"net/http"
)

// errorBody is the flat error shape used for unauthorized and unexpected
// failures: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// errorMessageBody is the nested error shape used for validation and
// not-found failures: {"error": {"message": "..."}}. The two shapes are
// distinct on the wire and must not be conflated.
type errorMessageBody struct {
	Error errorMessage `json:"error"`
}

type errorMessage struct {
	Message string `json:"message"`
}

// writeError writes a flat {"error": <message>} response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: message})
}

// writeErrorMessage writes a nested {"error": {"message": <message>}} response.
func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorMessageBody{Error: errorMessage{Message: message}})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
