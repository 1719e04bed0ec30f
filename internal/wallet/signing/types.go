package signing

import "github.com/pkg/errors"

var (
	ErrNoRPCEndpoint      = errors.New("at least one RPC URL is required")
	ErrRPCUnavailable     = errors.New("all RPC endpoints are unavailable")
	ErrChainIDMismatch    = errors.New("node reports a different chain id")
	ErrNodeCatchingUp     = errors.New("node is catching up")
	ErrInvalidBlockHeight = errors.New("invalid block height")
)

// Status is the subset of the CometBFT status response the client relies on.
type Status struct {
	NodeInfo struct {
		Network string `json:"network"`
		Moniker string `json:"moniker"`
	} `json:"node_info"`
	SyncInfo struct {
		LatestBlockHeight string `json:"latest_block_height"`
		CatchingUp        bool   `json:"catching_up"`
	} `json:"sync_info"`
}
