package address

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // cosmos addresses are defined over ripemd160
)

// DerivePrivateKey derives a secp256k1 private key from a BIP39 seed and BIP44 path.
// WARNING: Caller must clear the private key after use
func DerivePrivateKey(seed []byte, path string) ([]byte, error) {
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	derivedKey, err := deriveKeyFromPath(masterKey, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key from path")
	}

	// Return private key (32 bytes)
	return derivedKey.Key, nil
}

func deriveKeyFromPath(masterKey *bip32.Key, path string) (*bip32.Key, error) {
	indices, err := ParseBIP44Path(path)
	if err != nil {
		return nil, err
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	return key, nil
}

// CosmosAddress renders bech32(prefix, ripemd160(sha256(pubkey))) for a compressed public key.
func CosmosAddress(compressedPubKey []byte, prefix string) (string, error) {
	const compressedPubKeyLength = 33
	if len(compressedPubKey) != compressedPubKeyLength {
		return "", errors.Errorf("invalid compressed public key length %d", len(compressedPubKey))
	}

	sha := sha256.Sum256(compressedPubKey)
	hasher := ripemd160.New()
	hasher.Write(sha[:])

	converted, err := bech32.ConvertBits(hasher.Sum(nil), 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert address bits")
	}

	addr, err := bech32.Encode(prefix, converted)
	if err != nil {
		return "", errors.Wrap(err, "failed to bech32 encode address")
	}

	return addr, nil
}

// EthAddress renders the checksummed 0x address for a compressed public key.
func EthAddress(compressedPubKey []byte) (string, error) {
	pub, err := crypto.DecompressPubkey(compressedPubKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to decompress public key")
	}

	return crypto.PubkeyToAddress(*pub).Hex(), nil
}
