package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// AccessLog логирует каждый завершенный запрос с его request id
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			log.Info("%s %s - %d (%s) request_id=%s",
				r.Method, r.URL.Path, recorder.status, time.Since(start), GetRequestID(r.Context()))
		})
	}
}
