package signing

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// rpcClient wraps JSON-RPC connections to several node URLs with failover.
type rpcClient struct {
	urls    []string
	clients []*rpc.Client
	mu      sync.RWMutex
	current int
}

func dialRPC(ctx context.Context, urls []string) (*rpcClient, error) {
	if len(urls) == 0 {
		return nil, ErrNoRPCEndpoint
	}

	clients := make([]*rpc.Client, 0, len(urls))
	connected := 0
	for _, url := range urls {
		client, err := rpc.DialContext(ctx, url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			clients = append(clients, nil)
			continue
		}
		clients = append(clients, client)
		connected++
	}

	if connected == 0 {
		return nil, errors.Wrap(ErrRPCUnavailable, "failed to connect to any RPC node")
	}

	return &rpcClient{
		urls:    urls,
		clients: clients,
	}, nil
}

// call invokes method on the current node, moving on to the next one on failure.
func (c *rpcClient) call(ctx context.Context, result any, method string, args ...any) error {
	c.mu.RLock()
	start := c.current
	n := len(c.clients)
	c.mu.RUnlock()

	var lastErr error
	for i := range n {
		idx := (start + i) % n

		client, err := c.client(ctx, idx)
		if err != nil {
			lastErr = err
			continue
		}

		if err := client.CallContext(ctx, result, method, args...); err != nil {
			if ctx.Err() != nil {
				return errors.Wrapf(ctx.Err(), "rpc call %s aborted", method)
			}

			log.Warn().
				Str("url", c.urls[idx]).
				Str("method", method).
				Err(err).
				Msg("RPC call failed, trying next node")
			lastErr = err
			continue
		}

		if idx != start {
			c.mu.Lock()
			c.current = idx
			c.mu.Unlock()
		}

		return nil
	}

	return errors.Wrapf(ErrRPCUnavailable, "rpc call %s: %v", method, lastErr)
}

// client returns the connection for idx, redialing nodes whose initial dial failed.
func (c *rpcClient) client(ctx context.Context, idx int) (*rpc.Client, error) {
	c.mu.RLock()
	client := c.clients[idx]
	c.mu.RUnlock()

	if client != nil {
		return client, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clients[idx] != nil {
		return c.clients[idx], nil
	}

	client, err := rpc.DialContext(ctx, c.urls[idx])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to redial %s", c.urls[idx])
	}
	c.clients[idx] = client

	return client, nil
}

func (c *rpcClient) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, client := range c.clients {
		if client != nil {
			client.Close()
		}
	}
}
