// Package metrics expõe contadores Prometheus do serviço.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os contadores num registry próprio, então cada instância é independente.
type Metrics struct {
	Registry *prometheus.Registry

	Operacoes *prometheus.CounterVec
	Logins    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Operacoes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honorarios",
			Name:      "operacoes_total",
			Help:      "Alterações aplicadas no cadastro, por entidade e operação.",
		}, []string{"entidade", "operacao"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honorarios",
			Name:      "logins_total",
			Help:      "Tentativas de login por resultado.",
		}, []string{"resultado"}),
	}
	m.Registry.MustRegister(m.Operacoes, m.Logins)
	return m
}

// Operacao conta uma alteração; aceita receptor nil.
func (m *Metrics) Operacao(entidade, operacao string) {
	if m == nil {
		return
	}
	m.Operacoes.WithLabelValues(entidade, operacao).Inc()
}

// Login conta uma tentativa de login; aceita receptor nil.
func (m *Metrics) Login(resultado string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(resultado).Inc()
}

// Handler serve GET /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
