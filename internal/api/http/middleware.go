package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"robimar-backend/internal/logger"
	"robimar-backend/internal/security"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	adminKey     contextKey = "admin"
)

// RequestIDMiddleware tags every request with a unique ID for log
// correlation.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware logs one line per handled request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
			"request_id", RequestID(r.Context()),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// AuthMiddleware requires a valid Bearer token issued by the login
// endpoint.
func (a *API) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			return
		}
		claims, err := a.tokens.ValidateToken(token)
		if err != nil {
			status := http.StatusUnauthorized
			msg := "invalid token"
			if err == security.ErrExpiredToken {
				msg = "token has expired"
			}
			writeJSON(w, status, map[string]string{"error": msg})
			return
		}
		ctx := context.WithValue(r.Context(), adminKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID returns the request ID attached by RequestIDMiddleware.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// AdminClaims returns the authenticated admin claims, if any.
func AdminClaims(ctx context.Context) *security.AdminClaims {
	if claims, ok := ctx.Value(adminKey).(*security.AdminClaims); ok {
		return claims
	}
	return nil
}
