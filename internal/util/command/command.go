package command

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/api/router"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/wallet"
	"github/chapool/signer-pool/internal/wallet/keystore"
)

const shutdownTimeout = 30 * time.Second

// NewSubcommandGroup groups subcommands under name. Running the group alone prints its help.
func NewSubcommandGroup(name string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: "Subcommands for " + name,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// SetupLogger applies the logger config to the global zerolog logger.
func SetupLogger(cfg config.LoggerServer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Level)

	if cfg.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
		}))
	}
}

// WithServer builds a fully wired server from cfg, runs f and shuts the server down again.
// The seed phrase is taken from the config or unlocked from the keystore, prompting on the terminal if needed.
func WithServer(ctx context.Context, cfg config.Server, f func(ctx context.Context, s *api.Server) error) error {
	return WithServerPrompt(ctx, cfg, wallet.TerminalPrompt, f)
}

// WithServerPrompt is WithServer with a custom password prompt.
func WithServerPrompt(ctx context.Context, cfg config.Server, prompt wallet.PasswordPrompt, f func(ctx context.Context, s *api.Server) error) error {
	SetupLogger(cfg.Logger)

	ks, err := keystore.NewService(cfg.Wallet.KeystorePath)
	if err != nil {
		return errors.Wrap(err, "failed to create keystore service")
	}

	mnemonic, err := wallet.UnlockMnemonic(ctx, cfg.Wallet, ks, prompt)
	if err != nil {
		return err
	}

	s, err := api.InitNewServer(cfg, api.SeedPhrase(mnemonic))
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			log.Error().Err(err).Msg("Failed to gracefully shut down server")
		}
	}()

	router.Init(s)

	chainCfg := s.Manager.ChainConfig()
	log.Info().
		Str("chain_id", chainCfg.ChainID).
		Str("address_kind", chainCfg.AddressKind.String()).
		Strs("rpc_urls", chainCfg.RPCURLs()).
		Msg("Signer pool initialized")

	return f(ctx, s)
}
