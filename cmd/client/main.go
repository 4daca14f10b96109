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
		Use:   "powgate-client",
		Short: "Solve a powgate challenge and print the reward",
		Long: `powgate-client connects to a powgate server, brute-forces the challenge and
prints the quote it receives.

` + config.Usage(&config.ClientConfig{}),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reward, err := app.RunClient(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reward)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (yaml, toml, json or .env)")
	return cmd
}
