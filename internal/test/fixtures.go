package test

import (
	"github/chapool/signer-pool/internal/chain"
)

const (
	// Mnemonic is the well known development phrase shared by hardhat and anvil.
	//nolint:dupword,gosec // Test mnemonic with repeated words, not a secret
	Mnemonic = "test test test test test test test test test test test junk"

	ChainID      = "layer-local"
	Bech32Prefix = "layer"
)

// CosmosChainConfig returns a Cosmos chain config pointing at rpcEndpoint.
func CosmosChainConfig(rpcEndpoint string) chain.Config {
	return chain.Config{
		ChainID:     ChainID,
		RPCEndpoint: rpcEndpoint,
		GasPrice:    0.025,
		GasDenom:    "ulayer",
		AddressKind: chain.CosmosKind{Bech32Prefix: Bech32Prefix},
	}
}

// EthChainConfig returns an Eth chain config pointing at rpcEndpoint.
func EthChainConfig(rpcEndpoint string) chain.Config {
	return chain.Config{
		ChainID:     "31337",
		RPCEndpoint: rpcEndpoint,
		GasPrice:    1,
		GasDenom:    "wei",
		AddressKind: chain.EthKind{},
	}
}
