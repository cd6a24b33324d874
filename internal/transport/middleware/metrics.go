package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type httpObserver interface {
	RequestStarted() func()
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics records request count and latency per matched route template.
// It must run inside the router so the matched route is known.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := obs.RequestStarted()
			defer done()

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			obs.ObserveHTTP(r.Method, routeTemplate(r), sw.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return ""
	}
	return tmpl
}
