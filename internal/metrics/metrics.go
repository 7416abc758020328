// Package metrics registers the console's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dealerdesk_http_requests_total",
		Help: "Console HTTP requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dealerdesk_http_request_duration_seconds",
		Help:    "Console HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dealerdesk_upstream_requests_total",
		Help: "Requests to the remote financing API by service and outcome.",
	}, []string{"service", "outcome"})
)

// HTTP is a gin middleware recording request counts and latency per route.
func HTTP() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveUpstream records one upstream call outcome.
func ObserveUpstream(service string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	upstreamRequests.WithLabelValues(service, outcome).Inc()
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
