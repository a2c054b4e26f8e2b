// Package metrics expone métricas Prometheus del servicio.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/auth-service/internal/application/auth"
)

var _ auth.RegistrationObserver = (*Prom)(nil)

// Prom agrupa los colectores del servicio.
type Prom struct {
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	Registrations    *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewProm crea y registra los colectores en reg.
func NewProm(reg *prometheus.Registry) *Prom {
	p := &Prom{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "auth",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "auth",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route", "status"},
		),
		Registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "auth",
				Name:      "registrations_total",
				Help:      "User registration outcomes.",
			},
			[]string{"result"},
		),
		gatherer: reg,
	}
	reg.MustRegister(p.RequestsTotal, p.RequestsDuration, p.Registrations)
	return p
}

// ObserveRegistration cuenta un resultado de registro.
func (p *Prom) ObserveRegistration(result string) {
	p.Registrations.WithLabelValues(result).Inc()
}

// Middleware mide cada petición por método, ruta (plantilla) y status.
func (p *Prom) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		method := c.Method()
		code := strconv.Itoa(status)
		p.RequestsTotal.WithLabelValues(method, route, code).Inc()
		p.RequestsDuration.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics.
func (p *Prom) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{}))
}
