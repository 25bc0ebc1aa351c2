package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lc-autoel/LCA-BookingSite/pkg/metrics"
)

// statusRecorder перехватывает статус-код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает счетчик и гистограмму длительности
// HTTP-запросов. Путь берется из шаблона маршрута, чтобы не раздувать
// кардинальность метрик.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}

			m.ObserveRequest(r.Method, path, recorder.status, time.Since(start))
		})
	}
}
