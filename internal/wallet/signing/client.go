package signing

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github/chapool/signer-pool/internal/chain"
	"github/chapool/signer-pool/internal/util"
	"github/chapool/signer-pool/internal/wallet/signer"
)

// Client signs on behalf of one derived account of a chain.
// It keeps no chain state between calls, so it may be reused indefinitely.
type Client struct {
	cfg     chain.Config
	signer  *signer.KeySigner
	address string
	rpc     *rpcClient
}

// NewClient connects to the chain's RPC nodes and checks that they serve cfg.ChainID.
func NewClient(ctx context.Context, cfg chain.Config, keySigner *signer.KeySigner) (*Client, error) {
	addr, err := keySigner.Address(cfg.AddressKind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render account address")
	}

	rpcClient, err := dialRPC(ctx, cfg.RPCURLs())
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:     cfg,
		signer:  keySigner,
		address: addr,
		rpc:     rpcClient,
	}

	if _, err := c.checkNode(ctx); err != nil {
		c.Close()
		return nil, err
	}

	util.LogFromContext(ctx).Debug().
		Str("address", addr).
		Str("path", keySigner.Path()).
		Str("chain_id", cfg.ChainID).
		Msg("Signing client connected")

	return c, nil
}

// ProbeNode checks that the chain's RPC nodes answer and serve cfg.ChainID, without any account key.
func ProbeNode(ctx context.Context, cfg chain.Config) (*Status, error) {
	rpcClient, err := dialRPC(ctx, cfg.RPCURLs())
	if err != nil {
		return nil, err
	}

	c := &Client{cfg: cfg, rpc: rpcClient}
	defer c.Close()

	return c.checkNode(ctx)
}

func (c *Client) checkNode(ctx context.Context) (*Status, error) {
	status, err := c.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query node status")
	}

	if status.NodeInfo.Network != c.cfg.ChainID {
		return nil, errors.Wrapf(ErrChainIDMismatch, "expected %q, got %q", c.cfg.ChainID, status.NodeInfo.Network)
	}

	return status, nil
}

// Status fetches the current node status. Nothing is cached.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.rpc.call(ctx, &status, "status"); err != nil {
		return nil, err
	}

	return &status, nil
}

// LatestBlockHeight returns the node's latest block height, failing while the node is catching up.
func (c *Client) LatestBlockHeight(ctx context.Context) (uint64, error) {
	status, err := c.Status(ctx)
	if err != nil {
		return 0, err
	}

	if status.SyncInfo.CatchingUp {
		return 0, ErrNodeCatchingUp
	}

	height, err := strconv.ParseUint(status.SyncInfo.LatestBlockHeight, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidBlockHeight, "%q", status.SyncInfo.LatestBlockHeight)
	}

	return height, nil
}

// Sign signs msg with the account key.
func (c *Client) Sign(msg []byte) []byte {
	return c.signer.Sign(msg)
}

// Address returns the account address.
func (c *Client) Address() string {
	return c.address
}

// Signer returns the account key.
func (c *Client) Signer() *signer.KeySigner {
	return c.signer
}

// ChainConfig returns the chain the client is bound to.
func (c *Client) ChainConfig() chain.Config {
	return c.cfg
}

// Close releases the RPC connections.
func (c *Client) Close() error {
	c.rpc.close()
	return nil
}
