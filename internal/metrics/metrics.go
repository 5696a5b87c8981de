package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	NotificationReadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_read_count",
			Help: "Total number of notifications marked read",
		},
		[]string{"kind"},
	)

	PasscodeIssuedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "passcode_issued_count",
			Help: "Total number of signup passcodes issued",
		},
	)
)

// RecordHTTPRequestDuration records one served request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementNotificationRead increments the read counter for a kind.
func IncrementNotificationRead(kind string) {
	NotificationReadCount.WithLabelValues(kind).Inc()
}

// IncrementPasscodeIssued increments the issued-passcode counter.
func IncrementPasscodeIssued() {
	PasscodeIssuedCount.Inc()
}

// Middleware records request durations for every route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RecordHTTPRequestDuration(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
