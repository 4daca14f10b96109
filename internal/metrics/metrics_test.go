package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ConnectionOpened()
	m.ConnectionOpened()
	m.ChallengeIssued()
	m.Verified(true)
	m.Verified(false)
	m.Verified(false)
	m.Aborted("read")
	m.ConnectionClosed(10 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.connections))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.active))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.challenges))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verification.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.verification.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.aborted.WithLabelValues("read")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestServe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ChallengeIssued()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- Serve(ctx, ln, reg) }()

	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err = io.ReadAll(resp.Body)
		return err == nil && resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Contains(t, string(body), "powgate_challenges_issued_total 1")

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}
