package keystore

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/util/command"
	"github/chapool/signer-pool/internal/wallet"
	"github/chapool/signer-pool/internal/wallet/keystore"
)

func newVerify() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Checks that the keystore decrypts with the given password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()
			command.SetupLogger(cfg.Logger)

			return runVerify(cmd.Context(), cmd.OutOrStdout(), cfg.Wallet, wallet.TerminalPrompt)
		},
	}
}

func runVerify(ctx context.Context, out io.Writer, cfg config.WalletServer, prompt wallet.PasswordPrompt) error {
	ks, err := keystore.NewService(cfg.KeystorePath)
	if err != nil {
		return errors.Wrap(err, "failed to create keystore service")
	}

	// only the keystore counts here, never a seed phrase from the environment
	cfg.Mnemonic = ""

	if _, err := wallet.UnlockMnemonic(ctx, cfg, ks, prompt); err != nil {
		return err
	}

	file, err := ks.GetKeystore(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Keystore %s OK, address %s\n", cfg.KeystorePath, file.Address)

	return nil
}
