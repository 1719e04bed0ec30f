package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// RPCServer is a minimal CometBFT JSON-RPC endpoint answering "status".
type RPCServer struct {
	*httptest.Server

	network string
	calls   atomic.Int64
	failing atomic.Bool
}

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

type rpcResponse struct {
	Version string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewRPCServer starts a fake node reporting network as its chain id.
// The server is closed when the test ends.
func NewRPCServer(t *testing.T, network string) *RPCServer {
	t.Helper()

	s := &RPCServer{network: network}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

// Calls returns the number of JSON-RPC requests served.
func (s *RPCServer) Calls() int64 {
	return s.calls.Load()
}

// SetFailing makes every following request answer with HTTP 503.
func (s *RPCServer) SetFailing(failing bool) {
	s.failing.Store(failing)
}

func (s *RPCServer) handle(w http.ResponseWriter, r *http.Request) {
	s.calls.Add(1)

	if s.failing.Load() {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := rpcResponse{Version: "2.0", ID: req.ID}
	switch req.Method {
	case "status":
		res.Result = map[string]any{
			"node_info": map[string]any{
				"network": s.network,
				"moniker": "fake-node",
			},
			"sync_info": map[string]any{
				"latest_block_height": "42",
				"catching_up":         false,
			},
		}
	default:
		res.Error = &rpcError{Code: -32601, Message: "Method not found"}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
