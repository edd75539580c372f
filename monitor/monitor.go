package monitor

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startedAt = time.Now()

var (
	// ConsultationSubmissions counts public consultation form submissions.
	ConsultationSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "howdohome_consultation_submissions_total",
		Help: "Consultation requests submitted through the public form.",
	})

	// StatusTransitions counts consultation status changes by edge.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "howdohome_consultation_status_transitions_total",
		Help: "Consultation status transitions recorded in the audit trail.",
	}, []string{"from", "to"})

	// MediaUploads counts files uploaded to the media library.
	MediaUploads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "howdohome_media_uploads_total",
		Help: "Files uploaded to the media library.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "howdohome_http_requests_total",
		Help: "HTTP requests by method and status class.",
	}, []string{"method", "status"})
)

// RequestMetrics counts every request by method and status class.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		status := "2xx"
		switch {
		case c.Writer.Status() >= 500:
			status = "5xx"
		case c.Writer.Status() >= 400:
			status = "4xx"
		case c.Writer.Status() >= 300:
			status = "3xx"
		}
		httpRequests.WithLabelValues(c.Request.Method, status).Inc()
	}
}

// RegisterMonitorRoutes exposes /healthz and prometheus /metrics.
func RegisterMonitorRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"uptime_seconds": int64(time.Since(startedAt).Seconds()),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
