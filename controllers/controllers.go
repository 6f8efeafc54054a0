package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"campuslink_server/services"

	"github.com/go-playground/validator/v10"
)

// validate checks request payload structs before they reach the services.
var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeServiceError maps service errors onto HTTP statuses: validation
// failures become 400s, missing documents 404s, bad logins 401s, and
// anything else surfaces as a generic storage failure.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		writeMessage(w, http.StatusInternalServerError, err.Error())
	}
}
