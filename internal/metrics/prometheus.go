package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Cases *prometheus.CounterVec
	Fits  *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Cases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lda",
				Name:      "case_runs",
			}, []string{"case", "outcome"}),
		Fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lda",
				Name:      "fits",
			}, []string{"case", "model"}),
	}
}
