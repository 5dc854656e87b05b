package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JaimeStill/gym-rutinas/pkg/metrics"
)

// Metrics records request count and latency labelled by the matched
// ServeMux pattern. Requests that match no pattern are labelled "unmatched".
func Metrics(m *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.Observe(r.Method, route, strconv.Itoa(rec.status), time.Since(start))
		})
	}
}
