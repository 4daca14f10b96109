package app

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"powgate/config"
	"powgate/internal/logger"
	"powgate/internal/metrics"
	"powgate/internal/server/tcp"
	"powgate/internal/usecases"
)

var (
	ErrPowInit    = errors.New("failed to initialize pow")
	ErrQuotesInit = errors.New("failed to initialize quotes")
	ErrLoggerInit = errors.New("failed to initialize logger")
	ErrMetrics    = errors.New("metrics endpoint failed")
)

// RunServer loads the configuration from configPath (environment only when empty) and serves
// until ctx is done.
func RunServer(ctx context.Context, configPath string) error {
	cfg, err := config.LoadServerConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoggerInit, err)
	}
	defer func() { _ = zlog.Sync() }()

	log := zlog.Sugar().With("service", cfg.Server.Name)

	return runServer(ctx, cfg, log, prometheus.NewRegistry())
}

func runServer(ctx context.Context, cfg *config.ServerConfig, log *zap.SugaredLogger, reg *prometheus.Registry) error {
	powUsecase, err := usecases.NewPowUsecase(cfg.Pow)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPowInit, err)
	}

	quoteUsecase, err := newQuoteUsecase(cfg.Reward)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrQuotesInit, err)
	}

	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(reg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// bound before the gate so a bad METRICS_ADDR fails startup
	var metricsErr error
	metricsDone := make(chan struct{})
	if cfg.Server.MetricsAddr != "" {
		ln, err := net.Listen("tcp", cfg.Server.MetricsAddr)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMetrics, err)
		}
		log.Infow("metrics endpoint started", "address", ln.Addr().String())

		go func() {
			defer close(metricsDone)
			if err := metrics.Serve(ctx, ln, reg); err != nil {
				log.Errorw("metrics endpoint failed", "error", err)
				metricsErr = err
				cancel()
			}
		}()
	} else {
		close(metricsDone)
	}

	log.Infow("pow configured",
		"algorithm", cfg.Pow.Algorithm.Name,
		"length", cfg.Pow.Length,
		"zeros", cfg.Pow.Zeros)

	server := tcp.NewServer(
		&tcp.Config{
			Address:      cfg.Server.Addr(),
			KeepAlive:    cfg.Server.KeepAlive,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			BufferSize:   cfg.Server.BufferSize,
			AcceptRate:   cfg.Server.AcceptRate,
			AcceptBurst:  cfg.Server.AcceptBurst,
			ShutdownWait: cfg.Server.ShutdownWait,
		},
		powUsecase,
		quoteUsecase,
		recorder,
		log,
	)

	err = server.Run(ctx)
	cancel()
	<-metricsDone
	if err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}
	if metricsErr != nil {
		return fmt.Errorf("%w: %w", ErrMetrics, metricsErr)
	}

	log.Infow("server stopped")
	return nil
}

func newQuoteUsecase(cfg config.Reward) (usecases.QuoteUsecase, error) {
	if cfg.QuotesFile == "" {
		return usecases.NewQuoteUsecase(), nil
	}
	return usecases.LoadQuoteUsecase(cfg.QuotesFile)
}
