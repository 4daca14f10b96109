// Package metrics exposes prometheus collectors for the gate.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "powgate"

// Metrics records what happens to each connection.
type Metrics struct {
	connections  prometheus.Counter
	active       prometheus.Gauge
	challenges   prometheus.Counter
	verification *prometheus.CounterVec
	aborted      *prometheus.CounterVec
	duration     prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		connections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_total",
			Help:      "Accepted connections.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_active",
			Help:      "Connections currently being handled.",
		}),
		challenges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "challenges_issued_total",
			Help:      "Challenges written to clients.",
		}),
		verification: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Nonce verifications by result.",
		}, []string{"result"}),
		aborted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aborted_total",
			Help:      "Sessions aborted by an I/O error, by protocol stage.",
		}, []string{"stage"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Time from accept to close.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	reg.MustRegister(m.connections, m.active, m.challenges, m.verification, m.aborted, m.duration)
	return m
}

func (m *Metrics) ConnectionOpened() {
	m.connections.Inc()
	m.active.Inc()
}

func (m *Metrics) ConnectionClosed(d time.Duration) {
	m.active.Dec()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) ChallengeIssued() {
	m.challenges.Inc()
}

func (m *Metrics) Verified(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	m.verification.WithLabelValues(result).Inc()
}

func (m *Metrics) Aborted(stage string) {
	m.aborted.WithLabelValues(stage).Inc()
}

// Serve exposes the gatherer on ln until ctx is done. ln is closed on return.
func Serve(ctx context.Context, ln net.Listener, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}
