package chain

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	addressKindCosmos = "cosmos"
	addressKindEth    = "eth"
)

var (
	ErrUnknownAddressKind = errors.New("unknown address kind")
	ErrMissingChainID     = errors.New("chain_id is required")
	ErrMissingRPCEndpoint = errors.New("rpc_endpoint is required")
	ErrMissingPrefix      = errors.New("bech32_prefix is required for cosmos chains")
)

// fileConfig is the on-disk TOML representation of Config.
type fileConfig struct {
	ChainID      string  `toml:"chain_id"`
	RPCEndpoint  string  `toml:"rpc_endpoint"`
	GasPrice     float64 `toml:"gas_price"`
	GasDenom     string  `toml:"gas_denom"`
	AddressKind  string  `toml:"address_kind"`
	Bech32Prefix string  `toml:"bech32_prefix"`
}

// LoadFile reads a chain configuration from a TOML file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read chain config %s", path)
	}

	return Parse(string(data))
}

// Parse decodes a TOML chain configuration.
func Parse(data string) (Config, error) {
	var fc fileConfig
	if _, err := toml.Decode(data, &fc); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode chain config")
	}

	return fc.toConfig()
}

func (fc fileConfig) toConfig() (Config, error) {
	if fc.ChainID == "" {
		return Config{}, ErrMissingChainID
	}

	if len(ParseRPCURLs(fc.RPCEndpoint)) == 0 {
		return Config{}, ErrMissingRPCEndpoint
	}

	kind, err := ParseAddressKind(fc.AddressKind, fc.Bech32Prefix)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ChainID:     fc.ChainID,
		RPCEndpoint: fc.RPCEndpoint,
		GasPrice:    fc.GasPrice,
		GasDenom:    fc.GasDenom,
		AddressKind: kind,
	}, nil
}

// ParseAddressKind maps the textual kind used in config files to its variant.
//
//nolint:ireturn // AddressKind is a closed variant set
func ParseAddressKind(kind string, bech32Prefix string) (AddressKind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case addressKindCosmos:
		if bech32Prefix == "" {
			return nil, ErrMissingPrefix
		}
		return CosmosKind{Bech32Prefix: bech32Prefix}, nil
	case addressKindEth:
		return EthKind{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownAddressKind, "%q", kind)
	}
}
