package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/rmoreira/quizcraft/pkg/apperr"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, errorBody{Error: msg}, status)
}

// writeRepoError maps a repository error to its status code. Storage detail
// never reaches the client; the generic message does.
func writeRepoError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeError(w, msg, http.StatusBadRequest)
	case errors.Is(err, apperr.ErrAuthentication):
		writeError(w, msg, http.StatusUnauthorized)
	case errors.Is(err, apperr.ErrForbidden):
		writeError(w, msg, http.StatusForbidden)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, msg, http.StatusNotFound)
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, msg, http.StatusConflict)
	default:
		logger.Error("storage failure", slog.Any("err", err))
		writeError(w, msg, http.StatusInternalServerError)
	}
}
