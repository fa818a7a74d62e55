package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const SessionIDKey contextKey = "session_id"

// SessionHeader carries the caller's session identity across requests.
// It is the browser-visitor analogue: the client keeps the value and sends
// it back, the server treats it as the key for wizard and location state.
const SessionHeader = "X-Session-ID"

type SessionMiddleware struct {
}

func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Identify resolves the caller's session ID. A missing or malformed header
// gets a fresh UUID; the resolved ID is echoed back in the response header
// so the client can persist it.
func (m *SessionMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
		}

		w.Header().Set(SessionHeader, sessionID)

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionIDFromContext extracts the session ID from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}
