package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/util/command"
)

const (
	listenFlag string = "listen"
	warmupFlag string = "warmup"
)

func New() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the signer pool server

Unlocks the seed phrase, builds the signer pool, warms it up and serves HTTP.
Requires configuration through ENV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()

			if v.IsSet(listenFlag) {
				cfg.Echo.ListenAddress = v.GetString(listenFlag)
			}
			if v.IsSet(warmupFlag) {
				cfg.Pool.WarmupOnStart = v.GetBool(warmupFlag)
			}

			return runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String(listenFlag, "", "Address to listen on, overrides SERVER_ECHO_LISTEN_ADDRESS")
	cmd.Flags().Bool(warmupFlag, true, "Create the minimum number of idle signing clients before serving, overrides SERVER_POOL_WARMUP_ON_START")

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		log.Fatal().Err(err).Msg("Failed to bind server flags")
	}

	return cmd
}

func runServer(ctx context.Context, cfg config.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		if cfg.Pool.WarmupOnStart {
			if err := warmupSignerPool(ctx, s); err != nil {
				return err
			}
		}

		errs := make(chan error, 1)
		go func() {
			log.Info().Str("listen_address", cfg.Echo.ListenAddress).Msg("Starting server")
			errs <- s.Start()
		}()

		select {
		case err := <-errs:
			return err
		case <-ctx.Done():
			log.Info().Msg("Received shutdown signal")
			return nil
		}
	})
}
