package keystore

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/util/command"
	"github/chapool/signer-pool/internal/wallet"
	"github/chapool/signer-pool/internal/wallet/keystore"
	"github/chapool/signer-pool/internal/wallet/seed"
)

func newCreate() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Encrypts a seed phrase into a new keystore file",
		Long: `Encrypts a seed phrase into the keystore at SERVER_WALLET_KEYSTORE_PATH.

The seed phrase is taken from SERVER_WALLET_MNEMONIC. If unset, a new 24 word
phrase is generated and printed once. Back it up, it is the only way to recover
the accounts of the signer pool.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()
			command.SetupLogger(cfg.Logger)

			return runCreate(cmd.Context(), cmd.OutOrStdout(), cfg.Wallet, v.GetBool(lightFlag), wallet.TerminalPrompt)
		},
	}

	cmd.Flags().Bool(lightFlag, false, "Use light scrypt parameters (development only)")

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		log.Fatal().Err(err).Msg("Failed to bind keystore create flags")
	}

	return cmd
}

func runCreate(ctx context.Context, out io.Writer, cfg config.WalletServer, light bool, prompt wallet.PasswordPrompt) error {
	var opts []keystore.Option
	if light {
		opts = append(opts, keystore.WithScryptParams(keystore.LightScryptParams()))
	}

	ks, err := keystore.NewService(cfg.KeystorePath, opts...)
	if err != nil {
		return errors.Wrap(err, "failed to create keystore service")
	}

	exists, err := ks.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(keystore.ErrKeystoreExists, "%q", cfg.KeystorePath)
	}

	mnemonic := seed.NormalizeMnemonic(cfg.Mnemonic)
	generated := mnemonic == ""
	if generated {
		log.Info().Msg("No seed phrase configured, generating a new one")

		mnemonic, err = seed.NewMnemonic()
		if err != nil {
			return err
		}
	}

	password := cfg.KeystorePassword
	if password == "" {
		password, err = wallet.NewPassword(prompt)
		if err != nil {
			return err
		}
	} else if len(password) < wallet.MinPasswordLength {
		return wallet.ErrPasswordTooShort
	}

	file, err := ks.CreateKeystore(ctx, mnemonic, password)
	if err != nil {
		return err
	}

	log.Info().Str("path", cfg.KeystorePath).Str("address", file.Address).Msg("Keystore created")

	if generated {
		fmt.Fprintf(out, "Seed phrase (write it down, it is not shown again):\n\n  %s\n\n", mnemonic)
	}
	fmt.Fprintf(out, "Keystore %s created for %s\n", cfg.KeystorePath, file.Address)

	return nil
}
