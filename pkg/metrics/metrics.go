// Package metrics expõe contadores Prometheus da API e do negócio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lojista_x"

// Metrics agrupa os coletores registrados em um Registry próprio
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	httpInFlight  prometheus.Gauge
	salesTotal    prometheus.Counter
	salesRevenue  prometheus.Counter
	planDenials   *prometheus.CounterVec
	checkoutTotal *prometheus.CounterVec
}

// New cria e registra todos os coletores
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP em segundos",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Requisições HTTP em andamento",
		}),
		salesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_total",
			Help:      "Vendas registradas",
		}),
		salesRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_revenue_total",
			Help:      "Receita das vendas registradas",
		}),
		planDenials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_limit_denials_total",
			Help:      "Criações negadas pelo limite do plano",
		}, []string{"kind"}),
		checkoutTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_sessions_total",
			Help:      "Sessões de checkout solicitadas",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.httpInFlight,
		m.salesTotal,
		m.salesRevenue,
		m.planDenials,
		m.checkoutTotal,
	)
	return m
}

// Registry retorna o registry com os coletores da aplicação
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expõe as métricas no formato Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordSale contabiliza uma venda registrada
func (m *Metrics) RecordSale(revenue float64) {
	m.salesTotal.Inc()
	if revenue > 0 {
		m.salesRevenue.Add(revenue)
	}
}

// RecordPlanDenial contabiliza uma criação bloqueada pelo plano
func (m *Metrics) RecordPlanDenial(kind string) {
	m.planDenials.WithLabelValues(kind).Inc()
}

// RecordCheckout contabiliza uma tentativa de checkout ("created" ou "failed")
func (m *Metrics) RecordCheckout(result string) {
	m.checkoutTotal.WithLabelValues(result).Inc()
}

// GinMiddleware registra contagem e duração por rota
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.httpRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
