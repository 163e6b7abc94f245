package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Cases, Observer.prometheus.Fits)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrementCase counts one case run with the given outcome.
func (m *Metrics) IncrementCase(name, outcome string) {
	m.prometheus.Cases.WithLabelValues(name, outcome).Inc()
}

// IncrementFit counts one model fit within a case.
func (m *Metrics) IncrementFit(name, model string) {
	m.prometheus.Fits.WithLabelValues(name, model).Inc()
}

// Serve exposes the metrics endpoint on the given port.
func Serve(port int) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil); err != nil {
			log.Warn().Err(err).Int("port", port).Msg("metrics endpoint stopped")
		}
	}()
}
