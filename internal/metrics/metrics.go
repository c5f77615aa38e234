package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopkart_http_requests_total",
		Help: "Total de requests HTTP por ruta y status",
	}, []string{"path", "status"})

	ProjectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopkart_projections_total",
		Help: "Total de proyecciones del catálogo (filtrado + orden)",
	})

	ProjectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shopkart_projection_duration_seconds",
		Help:    "Duración de cada proyección del catálogo",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shopkart_snapshot_size",
		Help: "Cantidad de productos en el snapshot vigente",
	})
)

// ObserveProjection registra una proyección completada
func ObserveProjection(start time.Time) {
	ProjectionsTotal.Inc()
	ProjectionDuration.Observe(time.Since(start).Seconds())
}

// Middleware cuenta cada request por ruta y status
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RequestsTotal.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
