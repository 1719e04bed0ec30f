package wallet

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/wallet/keystore"
	"github/chapool/signer-pool/internal/wallet/seed"
	"golang.org/x/term"
)

const MinPasswordLength = 8

var (
	ErrPasswordTooShort  = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordsMismatch = errors.New("passwords do not match")
)

// PasswordPrompt asks the operator for a password.
type PasswordPrompt func(prompt string) (string, error)

// UnlockMnemonic returns the seed phrase the signer pool derives its accounts from.
// A mnemonic set in the config wins, otherwise the keystore is decrypted with the
// configured password or, if that is empty, a password read through prompt.
func UnlockMnemonic(ctx context.Context, cfg config.WalletServer, ks keystore.Service, prompt PasswordPrompt) (string, error) {
	log := log.With().Str("component", "wallet_unlock").Logger()

	if cfg.Mnemonic != "" {
		mnemonic := seed.NormalizeMnemonic(cfg.Mnemonic)
		if _, err := seed.FromMnemonic(mnemonic, ""); err != nil {
			return "", err
		}

		log.Warn().Msg("Using seed phrase from environment, prefer an encrypted keystore outside of development")
		return mnemonic, nil
	}

	exists, err := ks.Exists(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to check keystore existence")
	}

	if !exists {
		return "", errors.Wrapf(keystore.ErrKeystoreNotFound, "no seed phrase configured and no keystore at %q, run 'keystore create'", cfg.KeystorePath)
	}

	//nolint:varnamelen // ks is a common abbreviation for keystore
	file, err := ks.GetKeystore(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get keystore")
	}

	password := cfg.KeystorePassword
	if password == "" {
		if prompt == nil {
			return "", errors.New("keystore password is not configured and no prompt is available")
		}

		log.Info().Str("address", file.Address).Msg("Keystore found. Please enter password to unlock...")

		password, err = prompt("Enter keystore password: ")
		if err != nil {
			return "", errors.Wrap(err, "failed to read password")
		}
	}

	mnemonic, err := ks.DecryptMnemonic(ctx, file, password)
	if err != nil {
		return "", errors.Wrap(err, "failed to decrypt keystore (invalid password?)")
	}

	log.Info().Str("address", file.Address).Msg("Keystore unlocked")

	return mnemonic, nil
}

// NewPassword asks for a new keystore password twice and checks it.
func NewPassword(prompt PasswordPrompt) (string, error) {
	password, err := prompt(fmt.Sprintf("Enter password for keystore (min %d characters): ", MinPasswordLength))
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}

	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	passwordConfirm, err := prompt("Confirm password: ")
	if err != nil {
		return "", errors.Wrap(err, "failed to read password confirmation")
	}

	if password != passwordConfirm {
		return "", ErrPasswordsMismatch
	}

	return password, nil
}

// TerminalPrompt reads a password from stdin without echoing it.
//
//nolint:forbidigo // Password input requires direct terminal I/O
func TerminalPrompt(prompt string) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // stdin descriptor fits into int
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal, set SERVER_WALLET_KEYSTORE_PASSWORD instead")
	}

	fmt.Print(prompt)

	passwordBytes, err := term.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	fmt.Println()

	return string(passwordBytes), nil
}
