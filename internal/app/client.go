package app

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"powgate/config"
	"powgate/internal/client/tcp"
	"powgate/internal/logger"
	"powgate/internal/usecases"
)

// RunClient solves one challenge from the configured server and returns the reward.
func RunClient(ctx context.Context, configPath string) (string, error) {
	cfg, err := config.LoadClientConfig(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoggerInit, err)
	}
	defer func() { _ = zlog.Sync() }()

	return runClient(ctx, cfg, zlog.Sugar().With("service", cfg.Client.Name))
}

func runClient(ctx context.Context, cfg *config.ClientConfig, log *zap.SugaredLogger) (string, error) {
	solverUsecase, err := usecases.NewSolverUsecase(cfg.Algorithm, func(attempts uint64) {
		log.Debugw("solving", "attempts", humanize.Comma(int64(attempts)))
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPowInit, err)
	}

	client := tcp.NewClient(
		&tcp.Config{
			ServerAddr:     cfg.Client.ServerAddr,
			ConnectTimeout: cfg.Client.ConnectTimeout,
			RequestTimeout: cfg.Client.RequestTimeout,
			SolveTimeout:   cfg.Client.SolveTimeout,
			RetryAttempts:  cfg.Client.RetryAttempts,
			RetryDelay:     cfg.Client.RetryDelay,
			BufferSize:     cfg.Client.BufferSize,
		},
		solverUsecase,
		log,
	)

	reward, err := client.Start(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to run client: %w", err)
	}
	return reward, nil
}
