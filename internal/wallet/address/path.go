package address

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

const (
	// CosmosCoinType is the SLIP-44 coin type of the Cosmos hub
	CosmosCoinType = 118
	// EVMCoinType is the SLIP-44 coin type of Ethereum
	EVMCoinType = 60
)

var (
	ErrInvalidPath        = errors.New("invalid BIP44 path")
	ErrIndexOutOfRange    = errors.New("address index exceeds non-hardened range")
	ErrUnsupportedKeyKind = errors.New("unsupported key kind")
)

// CosmosHubPath returns the Cosmos hub derivation path for an account index.
// Format: m/44'/118'/0'/0/{index}
func CosmosHubPath(index uint32) (string, error) {
	return bip44Path(CosmosCoinType, index)
}

// EVMPath returns the Ethereum derivation path for an account index.
// Format: m/44'/60'/0'/0/{index}
func EVMPath(index uint32) (string, error) {
	return bip44Path(EVMCoinType, index)
}

func bip44Path(coinType uint32, index uint32) (string, error) {
	if index >= bip32.FirstHardenedChild {
		return "", errors.Wrapf(ErrIndexOutOfRange, "index %d", index)
	}

	return fmt.Sprintf("m/44'/%d'/0'/0/%d", coinType, index), nil
}

// ParseBIP44Path parses a BIP44 path string into child indices.
// Example: "m/44'/60'/0'/0/0" -> [2147483692, 2147483708, 2147483648, 0, 0]
func ParseBIP44Path(path string) ([]uint32, error) {
	if path != "m" && !strings.HasPrefix(path, "m/") {
		return nil, errors.Wrapf(ErrInvalidPath, "%q", path)
	}

	rest := strings.TrimPrefix(strings.TrimPrefix(path, "m"), "/")
	if rest == "" {
		return []uint32{}, nil
	}

	hardenedOffset := uint64(bip32.FirstHardenedChild)

	parts := strings.Split(rest, "/")
	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		hardened := strings.HasSuffix(part, "'")
		part = strings.TrimSuffix(part, "'")

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil || index >= hardenedOffset {
			return nil, errors.Wrapf(ErrInvalidPath, "segment %q of %q", part, path)
		}

		if hardened {
			index += hardenedOffset
		}

		indices = append(indices, uint32(index))
	}

	return indices, nil
}
