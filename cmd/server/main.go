package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"powgate/config"
	"powgate/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "powgate-server",
		Short: "Proof-of-work gated quote server",
		Long: `powgate-server issues a proof-of-work challenge to every TCP connection and
releases a quote only to clients that send back a valid nonce.

Configuration comes from the environment, optionally layered over a config file.

` + config.Usage(&config.ServerConfig{}),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunServer(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (yaml, toml, json or .env)")
	return cmd
}
