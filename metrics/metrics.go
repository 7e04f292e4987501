// Package metrics counts catlog writes in Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/catlog"
)

// Observer implements catlog.Observer, counting every write by severity, path and sink.
type Observer struct {
	writes *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &Observer{
		writes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catlog_writes_total",
				Help: "Total number of log records written",
			},
			[]string{"severity", "path", "sink"},
		),
	}
	if err := reg.Register(o.writes); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Observer) OnWrite(e catlog.Entry) {
	o.writes.WithLabelValues(e.Severity.Tag(), e.Path.String(), e.Sink).Inc()
}

// Writes exposes the counter vector, mainly for tests and dashboards.
func (o *Observer) Writes() *prometheus.CounterVec { return o.writes }
