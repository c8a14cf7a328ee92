package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/carbonwakeup/server/internal/account"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeAccountError translates account domain errors into status codes.
// Storage failures become an opaque 500 so callers can tell "your input was
// invalid" from "the system is broken"; details go to the log only.
func writeAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, account.ErrDuplicateIdentifier):
		http.Error(w, "user id already registered", http.StatusConflict)
	case errors.Is(err, account.ErrDuplicateEmail):
		http.Error(w, "email already registered", http.StatusConflict)
	case errors.Is(err, account.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, account.ErrNoCredentialSet):
		http.Error(w, "no credential set for account", http.StatusUnauthorized)
	case errors.Is(err, account.ErrInvalidPassword):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	default:
		logger.Error("account operation failed", slog.Any("err", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
