// Package respond writes JSON HTTP responses. The error helpers keep
// internal failure detail out of response bodies; detail goes to the log
// with credentials masked.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error body {"error": message} with the given status.
// Callers pass errors whose message is already safe for clients, such as
// validation failures.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// SafeError writes a fixed "internal server error" body and logs the real
// error with credentials masked. Handlers call this for failures they did
// not classify, so the underlying message never reaches the client. The
// code should be a 5xx status.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))

	JSON(w, code, map[string]string{"error": "internal server error"})
}
