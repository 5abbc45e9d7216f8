package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/asamuj/nicks/internal/server/public"
)

const flagAPIAddress = "api.address"

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, cfg, err := openHost(cmd)
			if err != nil {
				return err
			}
			defer host.Close()

			address := cfg.API.Address
			if flag := cmd.Flags().Lookup(flagAPIAddress); flag != nil && flag.Changed {
				address = flag.Value.String()
			}

			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			server := public.NewServer(host, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- server.Start(address) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("Shutting down public server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String(flagAPIAddress, "", "listen address (overrides config)")
	return cmd
}
