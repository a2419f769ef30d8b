package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every JSON endpoint answers with. Data carries
// the payload on success, Errors the per-field messages on validation
// failures; both are omitted when empty.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

func ResponseCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, Response{Status: true, Message: message, Data: data})
}

func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	writeJSON(w, http.StatusBadRequest, Response{Status: false, Message: message, Errors: errors})
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{Status: false, Message: message})
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Response{Status: false, Message: message})
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{Status: false, Message: message})
}

func ResponseInternalError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{Status: false, Message: message})
}
