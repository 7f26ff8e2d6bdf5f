package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFailure reports a store or gateway error. Both surface as 500; the
// log line keeps the cause.
func writeFailure(w http.ResponseWriter, op string, err error) {
	log.Printf("Failed to %s: %v", op, err)
	switch {
	case errors.Is(err, services.ErrGateway):
		writeError(w, http.StatusInternalServerError, "payment gateway error")
	case errors.Is(err, services.ErrInvalidID):
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to %s: %v", op, err))
	default:
		writeError(w, http.StatusInternalServerError, "Failed to "+op)
	}
}

// decodeBody reads a JSON body into dst and checks its validate tags. An
// empty body decodes to the zero value. It writes a 400 and returns false on
// failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func inserted(id string) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: &id}
}

func respondUpdate(w http.ResponseWriter, op string) func(models.UpdateResult, error) {
	return func(result models.UpdateResult, err error) {
		if err != nil {
			writeFailure(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func respondDelete(w http.ResponseWriter, op string) func(models.DeleteResult, error) {
	return func(result models.DeleteResult, err error) {
		if err != nil {
			writeFailure(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
