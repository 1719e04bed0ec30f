package signer

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"
	"github/chapool/signer-pool/internal/chain"
	"github/chapool/signer-pool/internal/wallet/address"
	"github/chapool/signer-pool/internal/wallet/seed"
)

// KeySigner holds the secp256k1 key pair of one derived account.
type KeySigner struct {
	privateKey *btcec.PrivateKey
	publicKey  *btcec.PublicKey
	path       string
}

// NewMnemonic derives the key pair at path from a BIP39 mnemonic without passphrase.
func NewMnemonic(mnemonic string, path string) (*KeySigner, error) {
	s, err := seed.FromMnemonic(mnemonic, "")
	if err != nil {
		return nil, err
	}
	defer zero(s)

	return NewSeed(s, path)
}

// NewSeed derives the key pair at path from a BIP39 seed.
func NewSeed(s []byte, path string) (*KeySigner, error) {
	privateKey, err := address.DerivePrivateKey(s, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive private key")
	}
	defer zero(privateKey)

	priv, pub := btcec.PrivKeyFromBytes(privateKey)

	return &KeySigner{
		privateKey: priv,
		publicKey:  pub,
		path:       path,
	}, nil
}

// Path returns the BIP44 path the key was derived at.
func (k *KeySigner) Path() string {
	return k.path
}

// PublicKey returns the 33 byte compressed public key.
func (k *KeySigner) PublicKey() []byte {
	return k.publicKey.SerializeCompressed()
}

// Address renders the account address for the given address kind.
func (k *KeySigner) Address(kind chain.AddressKind) (string, error) {
	switch kind := kind.(type) {
	case chain.CosmosKind:
		return address.CosmosAddress(k.PublicKey(), kind.Bech32Prefix)
	case chain.EthKind:
		return address.EthAddress(k.PublicKey())
	default:
		return "", errors.Wrapf(address.ErrUnsupportedKeyKind, "%v", kind)
	}
}

// Sign returns the 64 byte r||s signature of sha256(msg) with a low S value.
func (k *KeySigner) Sign(msg []byte) []byte {
	digest := sha256.Sum256(msg)

	// compact signatures carry a leading recovery byte
	compact := ecdsa.SignCompact(k.privateKey, digest[:], true)

	return compact[1:]
}

// Verify checks a signature produced by Sign.
func (k *KeySigner) Verify(msg []byte, sig []byte) bool {
	const sigLength = 64
	if len(sig) != sigLength {
		return false
	}

	var r, s btcec.ModNScalar
	if r.SetByteSlice(sig[:32]) || s.SetByteSlice(sig[32:]) {
		return false
	}

	digest := sha256.Sum256(msg)
	return ecdsa.NewSignature(&r, &s).Verify(digest[:], k.publicKey)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
