package chain

import (
	"fmt"
	"strings"
)

// AddressKind tags how account addresses are derived and rendered on a chain.
// The set of variants is closed: CosmosKind and EthKind.
type AddressKind interface {
	fmt.Stringer
	addressKind()
}

// CosmosKind derives secp256k1 keys on the Cosmos hub path and renders bech32 addresses.
type CosmosKind struct {
	Bech32Prefix string
}

func (CosmosKind) addressKind() {}

func (k CosmosKind) String() string {
	return "cosmos(" + k.Bech32Prefix + ")"
}

// EthKind renders 0x-prefixed keccak addresses.
type EthKind struct{}

func (EthKind) addressKind() {}

func (EthKind) String() string {
	return "eth"
}

// Config describes the network a signing client talks to. Values are treated as immutable.
type Config struct {
	ChainID     string
	RPCEndpoint string
	GasPrice    float64
	GasDenom    string
	AddressKind AddressKind
}

// RPCURLs returns the configured RPC endpoints in failover order.
func (c Config) RPCURLs() []string {
	return ParseRPCURLs(c.RPCEndpoint)
}

// ParseRPCURLs splits a comma separated list of RPC URLs.
func ParseRPCURLs(rpcURL string) []string {
	if rpcURL == "" {
		return nil
	}

	urls := strings.Split(rpcURL, ",")
	result := make([]string, 0, len(urls))

	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url != "" {
			result = append(result, url)
		}
	}

	return result
}
