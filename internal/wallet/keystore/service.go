package keystore

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github/chapool/signer-pool/internal/chain"
	"github/chapool/signer-pool/internal/util"
	"github/chapool/signer-pool/internal/wallet/address"
	"github/chapool/signer-pool/internal/wallet/seed"
	"github/chapool/signer-pool/internal/wallet/signer"
)

var (
	ErrKeystoreExists   = errors.New("keystore already exists")
	ErrKeystoreNotFound = errors.New("keystore not found")
	ErrInvalidPassword  = errors.New("invalid password: MAC mismatch")
	ErrAddressMismatch  = errors.New("decrypted seed phrase does not match keystore address")
)

const keystoreFileMode = 0o600

// Service provides keystore encryption and decryption functionality
type Service interface {
	// CreateKeystore encrypts a mnemonic and writes the keystore file
	CreateKeystore(ctx context.Context, mnemonic string, password string) (*Keystore, error)

	// DecryptMnemonic decrypts mnemonic from keystore
	DecryptMnemonic(ctx context.Context, keystore *Keystore, password string) (string, error)

	// GetKeystore reads the keystore file
	GetKeystore(ctx context.Context) (*Keystore, error)

	// Exists checks if the keystore file exists
	Exists(ctx context.Context) (bool, error)
}

type service struct {
	path   string
	params *ScryptParams
}

// Option configures the keystore service
type Option func(*service)

// WithScryptParams overrides the KDF parameters used for new keystores.
func WithScryptParams(params *ScryptParams) Option {
	return func(s *service) {
		s.params = params
	}
}

// NewService creates a keystore service backed by the file at path
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(path string, opts ...Option) (Service, error) {
	if path == "" {
		return nil, errors.New("keystore path is required")
	}

	s := &service{
		path:   path,
		params: DefaultScryptParams(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// CreateKeystore creates and encrypts a mnemonic to keystore
func (s *service) CreateKeystore(ctx context.Context, mnemonic string, password string) (*Keystore, error) {
	log := util.LogFromContext(ctx)

	mnemonic = seed.NormalizeMnemonic(mnemonic)
	addr, err := verificationAddress(mnemonic)
	if err != nil {
		return nil, err
	}

	ks, err := encryptMnemonic(mnemonic, password, s.params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encrypt mnemonic")
		return nil, errors.Wrap(err, "failed to encrypt mnemonic")
	}
	ks.Address = addr

	data, err := json.MarshalIndent(ks, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal keystore JSON")
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, keystoreFileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, ErrKeystoreExists
		}
		return nil, errors.Wrap(err, "failed to create keystore file")
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("Failed to write keystore")
		return nil, errors.Wrap(err, "failed to write keystore file")
	}

	log.Info().Str("path", s.path).Str("address", addr).Msg("Keystore created")

	return ks, nil
}

// DecryptMnemonic decrypts mnemonic from keystore and checks it against the stored address
func (s *service) DecryptMnemonic(ctx context.Context, keystore *Keystore, password string) (string, error) {
	log := util.LogFromContext(ctx)

	mnemonic, err := decryptMnemonic(keystore, password)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to decrypt keystore")
		return "", err
	}

	if keystore.Address != "" {
		addr, err := verificationAddress(mnemonic)
		if err != nil {
			return "", err
		}

		if addr != keystore.Address {
			log.Warn().
				Str("derived", addr).
				Str("stored", keystore.Address).
				Msg("Keystore verification failed: addresses do not match")
			return "", ErrAddressMismatch
		}
	}

	return mnemonic, nil
}

// GetKeystore reads the keystore file
func (s *service) GetKeystore(_ context.Context) (*Keystore, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeystoreNotFound
		}
		return nil, errors.Wrap(err, "failed to read keystore file")
	}

	var ks Keystore
	if err := json.Unmarshal(data, &ks); err != nil {
		return nil, errors.Wrap(err, "failed to decode keystore JSON")
	}

	return &ks, nil
}

// Exists checks if keystore exists
func (s *service) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, errors.Wrap(err, "failed to stat keystore file")
}

// verificationAddress derives the EVM account at index 0, which identifies the seed phrase.
func verificationAddress(mnemonic string) (string, error) {
	path, err := address.EVMPath(0)
	if err != nil {
		return "", err
	}

	key, err := signer.NewMnemonic(mnemonic, path)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive verification address")
	}

	return key.Address(chain.EthKind{})
}
