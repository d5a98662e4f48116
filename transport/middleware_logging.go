package transport

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/car-market/utils/logger"
	"github.com/muhammadheryan/car-market/utils/metrics"
	"go.uber.org/zap"
)

const unmatchedRoute = "unmatched"

type routeLabelKey struct{}

// routeLabel is filled in by RouteLabelMiddleware once mux has matched a route.
type routeLabel struct {
	template string
}

// LoggingMiddleware logs every request and records the HTTP metrics, labelled
// by route template so ids do not explode cardinality. It wraps the whole
// handler chain, so rejected and unrouted requests are counted as unmatched.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			label := &routeLabel{template: unmatchedRoute}
			r = r.WithContext(context.WithValue(r.Context(), routeLabelKey{}, label))

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			route := label.template
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())

			logger.Info(
				"HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", duration),
			)
		})
	}
}

// RouteLabelMiddleware records the matched route template for LoggingMiddleware.
func RouteLabelMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if label, ok := r.Context().Value(routeLabelKey{}).(*routeLabel); ok {
				if route := mux.CurrentRoute(r); route != nil {
					if tpl, err := route.GetPathTemplate(); err == nil {
						label.template = tpl
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
