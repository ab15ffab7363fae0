package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/retail-ops/internal/lookup"
)

const internalErrorMessage = "Internal server error"

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondWithError отправляет JSON ошибку
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Success: false, Error: message})
}

// respondWithJSON отправляет JSON ответ
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, lookup.ErrEmailRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns err's text, or the generic message when it has none.
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return internalErrorMessage
	}
	return err.Error()
}

// panicMessage extracts a client message from a recovered panic value.
func panicMessage(rec any) string {
	switch v := rec.(type) {
	case error:
		return errorMessage(v)
	case string:
		if v != "" {
			return v
		}
	}
	return internalErrorMessage
}
