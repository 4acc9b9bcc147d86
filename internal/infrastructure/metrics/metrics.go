// Package metrics instrumentación Prometheus del servicio: métricas HTTP y de casos de uso de activos.
//
//	app.Use(m.Middleware())
//	app.Get("/metrics", m.Handler())
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Inventario-activos/internal/application/usecase"
)

const namespace = "inventario"

var _ usecase.Metrics = (*Metrics)(nil)

// Metrics registro propio (no el global) con las métricas del servicio.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	inFlight        prometheus.Gauge
	operations      *prometheus.CounterVec
	collisions      prometheus.Counter
}

// New crea y registra las métricas.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP.",
		}, []string{"method", "route", "status"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Peticiones HTTP en curso.",
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assets",
			Name:      "operations_total",
			Help:      "Operaciones sobre activos por resultado.",
		}, []string{"operation", "result"}),
		collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assets",
			Name:      "number_collisions_total",
			Help:      "Números de activo generados que ya existían.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration, m.requestTotal, m.inFlight, m.operations, m.collisions,
	)
	return m
}

// Registry expone el registro (tests y colectores adicionales).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveOperation(operation, result string) {
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) NumberCollision() { m.collisions.Inc() }

// Middleware mide duración y total por método, ruta registrada y status.
// Usa la ruta de Fiber (/api/assets/:id) para no disparar la cardinalidad.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		code := strconv.Itoa(status)
		m.requestDuration.WithLabelValues(c.Method(), route, code).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(c.Method(), route, code).Inc()
		return err
	}
}

// Handler sirve /metrics en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
