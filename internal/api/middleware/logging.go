package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// AccessLog пишет строку лога на каждый запрос.
// Должен стоять после RequestID, чтобы идентификатор уже был в контексте.
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestID(r.Context())
			logger.Info("%s %s - status=%d, duration=%s, request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond), requestID)
		})
	}
}
