package middleware

import (
	"net/http"
	"time"

	"practice-manager/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type LoggingMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.Collector
}

func NewLoggingMiddleware(log *logrus.Logger, metrics *metrics.Collector) *LoggingMiddleware {
	return &LoggingMiddleware{
		log:     log,
		metrics: metrics,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Handle logs every request and records metrics under the matched route
// template.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		elapsed := time.Since(start)
		route := routeTemplate(req)
		m.metrics.ObserveRequest(req.Method, route, rec.status, elapsed.Seconds())

		entry := m.log.WithFields(logrus.Fields{
			"method":      req.Method,
			"path":        req.URL.Path,
			"route":       route,
			"status":      rec.status,
			"duration_ms": elapsed.Milliseconds(),
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request handled")
	})
}

func routeTemplate(req *http.Request) string {
	if current := mux.CurrentRoute(req); current != nil {
		if tpl, err := current.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
