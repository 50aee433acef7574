package middleware

import (
	"expvar"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
)

var (
	totalRequestsReceived           = expvar.NewInt("total_requests_received")
	totalResponsesSent              = expvar.NewInt("total_responses_sent")
	totalProcessingTimeMicroseconds = expvar.NewInt("total_processing_time_microseconds")
	totalResponsesSentByStatus      = expvar.NewMap("total_responses_sent_by_status")
)

// Metrics publishes request counters through expvar (served at /debug/vars).
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			totalRequestsReceived.Add(1)

			m := httpsnoop.CaptureMetrics(next, w, r)

			totalResponsesSent.Add(1)
			totalProcessingTimeMicroseconds.Add(m.Duration.Microseconds())
			totalResponsesSentByStatus.Add(strconv.Itoa(m.Code), 1)
		})
	}
}
