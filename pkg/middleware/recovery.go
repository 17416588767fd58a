package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// recoveryBody is the fixed payload returned when a handler panics. The
// panic value itself only ever goes to the log.
var recoveryBody = map[string]string{
	"code":    "INTERNAL_ERROR",
	"message": "an internal error occurred",
}

// Recovery converts handler panics into a JSON 500 response so a single
// bad request cannot take the server down.
func Recovery(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// The client is gone; re-panic so net/http aborts quietly.
					panic(rec)
				}

				l.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(w).Encode(recoveryBody); err != nil {
					l.Error("failed to write recovery response", slog.String("error", err.Error()))
				}
			}()

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
