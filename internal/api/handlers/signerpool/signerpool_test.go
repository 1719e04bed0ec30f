package signerpool_test

import (
	"encoding/hex"
	"net/http"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/pool"
	"github/chapool/signer-pool/internal/test"
	"github/chapool/signer-pool/internal/types"
	"github/chapool/signer-pool/internal/wallet/address"
	"github/chapool/signer-pool/internal/wallet/signer"
	"github/chapool/signer-pool/internal/wallet/signing"
)

func TestGetStats(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.RPCServer) {
		res := test.PerformRequest(t, s, http.MethodGet, "/api/v1/pool/stats", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var stats types.GetPoolStatsResponse
		test.ParseResponseBody(t, res, &stats)
		require.NoError(t, stats.Validate(strfmt.Default))

		assert.Equal(t, test.ChainID, *stats.ChainID)
		assert.Equal(t, "cosmos("+test.Bech32Prefix+")", *stats.AddressKind)
		assert.Equal(t, int64(0), *stats.AllocatedIndices)
		assert.Equal(t, int64(0), *stats.TotalClients)
		assert.Equal(t, int64(s.Config.Pool.MaxSize), *stats.MaxClients)

		res = test.PerformRequest(t, s, http.MethodPost, "/api/v1/pool/sign", newSignPayload([]byte("hello")), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, http.MethodGet, "/api/v1/pool/stats", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		test.ParseResponseBody(t, res, &stats)

		assert.Equal(t, int64(1), *stats.AllocatedIndices)
		assert.Equal(t, int64(1), *stats.TotalClients)
		assert.Equal(t, int64(1), *stats.IdleClients)
		assert.Equal(t, int64(1), *stats.AcquireCount)
	})
}

func TestPostSign(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.RPCServer) {
		msg := []byte("transfer 10ulayer")

		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/pool/sign", newSignPayload(msg), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var body types.PostSignResponse
		test.ParseResponseBody(t, res, &body)

		path, err := address.CosmosHubPath(0)
		require.NoError(t, err)
		key, err := signer.NewMnemonic(test.Mnemonic, path)
		require.NoError(t, err)
		addr, err := key.Address(s.Manager.ChainConfig().AddressKind)
		require.NoError(t, err)

		require.NoError(t, body.Validate(strfmt.Default))
		assert.Equal(t, path, *body.DerivationPath)
		assert.Equal(t, addr, *body.Address)
		assert.Equal(t, hex.EncodeToString(key.PublicKey()), *body.PublicKey)
		assert.Len(t, *body.Signature, 64)
		assert.True(t, key.Verify(msg, *body.Signature))

		pub, err := hex.DecodeString(*body.PublicKey)
		require.NoError(t, err)
		_, err = btcec.ParsePubKey(pub)
		require.NoError(t, err)
	})
}

func TestPostSignReusesRecycledClient(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.RPCServer) {
		var addresses []string
		for range 3 {
			res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/pool/sign", newSignPayload([]byte("x")), nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode)

			var body types.PostSignResponse
			test.ParseResponseBody(t, res, &body)
			addresses = append(addresses, *body.Address)
		}

		assert.Equal(t, addresses[0], addresses[1])
		assert.Equal(t, addresses[0], addresses[2])
		assert.Equal(t, uint32(1), s.Manager.Allocated())
	})
}

func TestPoolHoldsDistinctAccounts(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.RPCServer) {
		const n = 4

		// hold n clients at the same time so the pool has to create n of them
		objs := make([]*pool.Object[*signing.Client], 0, n)
		paths := make([]string, 0, n)
		for range n {
			obj, err := s.Pool.Acquire(t.Context())
			require.NoError(t, err)

			objs = append(objs, obj)
			paths = append(paths, obj.Value().Signer().Path())
		}

		for _, obj := range objs {
			obj.Release(t.Context())
		}

		assert.ElementsMatch(t, []string{
			"m/44'/118'/0'/0/0",
			"m/44'/118'/0'/0/1",
			"m/44'/118'/0'/0/2",
			"m/44'/118'/0'/0/3",
		}, paths)
		assert.Equal(t, uint32(n), s.Manager.Allocated())
		assert.Equal(t, int32(n), s.Pool.Stat().IdleResources())
	})
}

func TestPostSignInvalidBody(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.RPCServer) {
		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/pool/sign", types.PostSignPayload{}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var valErr types.PublicHTTPValidationError
		test.ParseResponseBody(t, res, &valErr)
		assert.Equal(t, int64(http.StatusBadRequest), *valErr.Code)
		assert.Equal(t, types.PublicHTTPErrorTypeGeneric, *valErr.Type)
		require.Len(t, valErr.ValidationErrors, 1)
		assert.Equal(t, "payload", *valErr.ValidationErrors[0].Key)
		assert.Equal(t, "body", *valErr.ValidationErrors[0].In)

		res = test.PerformRequest(t, s, http.MethodPost, "/api/v1/pool/sign", map[string]any{"payload": ""}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
		test.ParseResponseBody(t, res, &valErr)
		require.Len(t, valErr.ValidationErrors, 1)
		assert.Equal(t, "payload", *valErr.ValidationErrors[0].Key)

		res = test.PerformRequest(t, s, http.MethodPost, "/api/v1/pool/sign", map[string]any{"payload": 42}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var httpErr types.PublicHTTPError
		test.ParseResponseBody(t, res, &httpErr)
		assert.Equal(t, types.PublicHTTPErrorTypeGeneric, *httpErr.Type)

		assert.Equal(t, uint32(0), s.Manager.Allocated())
	})
}

func TestPostSignNodeDown(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, rpc *test.RPCServer) {
		rpc.SetFailing(true)

		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/pool/sign", newSignPayload([]byte("x")), nil)
		require.Equal(t, http.StatusBadGateway, res.Result().StatusCode)

		var httpErr types.PublicHTTPError
		test.ParseResponseBody(t, res, &httpErr)
		assert.Equal(t, int64(http.StatusBadGateway), *httpErr.Code)
		assert.Equal(t, types.PublicHTTPErrorTypeSIGNINGCLIENTUNAVAILABLE, *httpErr.Type)

		// the failed attempt consumed index 0
		rpc.SetFailing(false)

		res = test.PerformRequest(t, s, http.MethodPost, "/api/v1/pool/sign", newSignPayload([]byte("x")), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var body types.PostSignResponse
		test.ParseResponseBody(t, res, &body)
		assert.Equal(t, "m/44'/118'/0'/0/1", *body.DerivationPath)
	})
}

func TestPostSignPoolExhausted(t *testing.T) {
	cfg := test.NewTestConfig(t, test.NewRPCServer(t, test.ChainID))
	cfg.Pool.MaxSize = 1
	cfg.Pool.AcquireTimeout = 50 * time.Millisecond

	test.WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		obj, err := s.Pool.Acquire(t.Context())
		require.NoError(t, err)
		defer obj.Release(t.Context())

		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/pool/sign", newSignPayload([]byte("x")), nil)
		require.Equal(t, http.StatusServiceUnavailable, res.Result().StatusCode)

		var httpErr types.PublicHTTPError
		test.ParseResponseBody(t, res, &httpErr)
		assert.Equal(t, types.PublicHTTPErrorTypeSIGNERPOOLEXHAUSTED, *httpErr.Type)
		assert.Equal(t, swag.String("No signing client became available in time."), httpErr.Title)
	})
}

func newSignPayload(msg []byte) *types.PostSignPayload {
	payload := strfmt.Base64(msg)
	return &types.PostSignPayload{Payload: &payload}
}
