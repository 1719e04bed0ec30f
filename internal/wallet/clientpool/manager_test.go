package clientpool_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/signer-pool/internal/chain"
	"github/chapool/signer-pool/internal/pool"
	"github/chapool/signer-pool/internal/test"
	"github/chapool/signer-pool/internal/wallet/address"
	"github/chapool/signer-pool/internal/wallet/clientpool"
	"github/chapool/signer-pool/internal/wallet/seed"
	"github/chapool/signer-pool/internal/wallet/signer"
	"github/chapool/signer-pool/internal/wallet/signing"
)

// recordingDeriver records every path it is asked to derive.
type recordingDeriver struct {
	mu    sync.Mutex
	paths []string
	fail  map[string]error
}

func (r *recordingDeriver) derive(mnemonic string, path string) (*signer.KeySigner, error) {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	err := r.fail[path]
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}

	return signer.NewMnemonic(mnemonic, path)
}

func (r *recordingDeriver) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.paths...)
}

type countingObserver struct {
	mu       sync.Mutex
	outcomes map[string]int
	recycles int
}

func (o *countingObserver) ObserveCreate(outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.outcomes == nil {
		o.outcomes = map[string]int{}
	}
	o.outcomes[outcome]++
}

func (o *countingObserver) ObserveRecycle() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.recycles++
}

func cosmosPath(t *testing.T, index uint32) string {
	t.Helper()

	path, err := address.CosmosHubPath(index)
	require.NoError(t, err)

	return path
}

func TestCreateSequentialScenario(t *testing.T) {
	node := test.NewRPCServer(t, test.ChainID)
	m := clientpool.NewFromSeed(test.Mnemonic, test.CosmosChainConfig(node.URL))

	addresses := map[string]struct{}{}
	for i := range uint32(3) {
		client, err := m.Create(t.Context())
		require.NoError(t, err)
		defer client.Close()

		assert.Equal(t, cosmosPath(t, i), client.Signer().Path())
		assert.True(t, strings.HasPrefix(client.Address(), test.Bech32Prefix+"1"), client.Address())
		addresses[client.Address()] = struct{}{}
	}

	assert.Len(t, addresses, 3)
	assert.Equal(t, uint32(3), m.Allocated())
}

func TestCreateConcurrentIndicesUnique(t *testing.T) {
	const n = 24

	node := test.NewRPCServer(t, test.ChainID)
	deriver := &recordingDeriver{}
	m := clientpool.NewFromSeed(test.Mnemonic, test.CosmosChainConfig(node.URL), clientpool.WithKeyDeriver(deriver.derive))

	var wg sync.WaitGroup
	clients := make(chan *signing.Client, n)
	errs := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client, err := m.Create(context.Background())
			if err != nil {
				errs <- err
				return
			}
			clients <- client
		}()
	}
	wg.Wait()
	close(clients)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	addresses := map[string]struct{}{}
	for client := range clients {
		addresses[client.Address()] = struct{}{}
		client.Close()
	}
	assert.Len(t, addresses, n)

	expected := make([]string, 0, n)
	for i := range uint32(n) {
		expected = append(expected, cosmosPath(t, i))
	}
	assert.ElementsMatch(t, expected, deriver.recorded())
	assert.Equal(t, uint32(n), m.Allocated())
}

func TestCreateUnsupportedAddressKind(t *testing.T) {
	deriver := &recordingDeriver{}
	constructed := 0
	construct := func(context.Context, chain.Config, *signer.KeySigner) (*signing.Client, error) {
		constructed++
		return nil, errors.New("unreachable")
	}

	for _, cfg := range []chain.Config{
		test.EthChainConfig("http://127.0.0.1:8545"),
		{ChainID: "no-kind", RPCEndpoint: "http://127.0.0.1:26657"},
	} {
		m := clientpool.NewFromSeed(test.Mnemonic, cfg,
			clientpool.WithKeyDeriver(deriver.derive),
			clientpool.WithClientConstructor(construct),
		)

		for range 3 {
			client, err := m.Create(t.Context())
			require.ErrorIs(t, err, clientpool.ErrUnsupportedAddressKind)
			assert.Nil(t, client)

			var createErr *clientpool.CreateError
			require.ErrorAs(t, err, &createErr)
			assert.False(t, createErr.HasIndex)
		}
		assert.Equal(t, uint32(0), m.Allocated())
	}

	assert.Empty(t, deriver.recorded())
	assert.Zero(t, constructed)

	node := test.NewRPCServer(t, test.ChainID)
	cosmos := clientpool.NewFromSeed(test.Mnemonic, test.CosmosChainConfig(node.URL))
	client, err := cosmos.Create(t.Context())
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, cosmosPath(t, 0), client.Signer().Path())
}

func TestCreateDeterministic(t *testing.T) {
	node := test.NewRPCServer(t, test.ChainID)
	cfg := test.CosmosChainConfig(node.URL)

	a := clientpool.NewFromSeed(test.Mnemonic, cfg)
	b := clientpool.NewFromSeed(test.Mnemonic, cfg)

	for range 3 {
		ca, err := a.Create(t.Context())
		require.NoError(t, err)
		defer ca.Close()

		cb, err := b.Create(t.Context())
		require.NoError(t, err)
		defer cb.Close()

		assert.Equal(t, ca.Signer().PublicKey(), cb.Signer().PublicKey())
		assert.Equal(t, ca.Address(), cb.Address())

		msg := []byte("determinism")
		assert.Equal(t, ca.Sign(msg), cb.Sign(msg))
	}
}

func TestCreateIndexConsumedOnDerivationFailure(t *testing.T) {
	node := test.NewRPCServer(t, test.ChainID)
	errInjected := errors.New("injected invalid path")
	deriver := &recordingDeriver{fail: map[string]error{cosmosPath(t, 1): errInjected}}
	m := clientpool.NewFromSeed(test.Mnemonic, test.CosmosChainConfig(node.URL), clientpool.WithKeyDeriver(deriver.derive))

	first, err := m.Create(t.Context())
	require.NoError(t, err)
	defer first.Close()

	_, err = m.Create(t.Context())
	require.ErrorIs(t, err, clientpool.ErrKeyDerivation)
	require.ErrorIs(t, err, errInjected)

	var createErr *clientpool.CreateError
	require.ErrorAs(t, err, &createErr)
	assert.True(t, createErr.HasIndex)
	assert.Equal(t, uint32(1), createErr.Index)
	assert.Contains(t, err.Error(), "derivation index 1")

	third, err := m.Create(t.Context())
	require.NoError(t, err)
	defer third.Close()
	assert.Equal(t, cosmosPath(t, 2), third.Signer().Path())

	assert.Equal(t, []string{cosmosPath(t, 0), cosmosPath(t, 1), cosmosPath(t, 2)}, deriver.recorded())
}

func TestCreateInvalidSeedPhrase(t *testing.T) {
	node := test.NewRPCServer(t, test.ChainID)
	m := clientpool.NewFromSeed("not a valid seed phrase", test.CosmosChainConfig(node.URL))

	for range 2 {
		_, err := m.Create(t.Context())
		require.ErrorIs(t, err, clientpool.ErrKeyDerivation)
		require.ErrorIs(t, err, seed.ErrInvalidMnemonic)
	}

	assert.Equal(t, uint32(2), m.Allocated())
	assert.Zero(t, node.Calls())
}

func TestCreateClientInitFailure(t *testing.T) {
	node := test.NewRPCServer(t, test.ChainID)
	node.SetFailing(true)
	m := clientpool.NewFromSeed(test.Mnemonic, test.CosmosChainConfig(node.URL))

	_, err := m.Create(t.Context())
	require.ErrorIs(t, err, clientpool.ErrClientInit)
	require.ErrorIs(t, err, signing.ErrRPCUnavailable)

	node.SetFailing(false)
	client, err := m.Create(t.Context())
	require.NoError(t, err)
	defer client.Close()

	// the retry never reuses the index of the failed attempt
	assert.Equal(t, cosmosPath(t, 1), client.Signer().Path())
}

func TestCreatePassesContextToConstructor(t *testing.T) {
	type ctxKey struct{}

	var seen any
	construct := func(ctx context.Context, cfg chain.Config, key *signer.KeySigner) (*signing.Client, error) {
		seen = ctx.Value(ctxKey{})
		return nil, ctx.Err()
	}

	m := clientpool.NewFromSeed(test.Mnemonic, test.CosmosChainConfig("http://unused"), clientpool.WithClientConstructor(construct))

	ctx, cancel := context.WithCancel(context.WithValue(t.Context(), ctxKey{}, "marker"))
	cancel()

	_, err := m.Create(ctx)
	require.ErrorIs(t, err, clientpool.ErrClientInit)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "marker", seen)
	assert.Equal(t, uint32(1), m.Allocated())
}

func TestRecycleAlwaysAccepts(t *testing.T) {
	node := test.NewRPCServer(t, test.ChainID)
	observer := &countingObserver{}
	m := clientpool.NewFromSeed(test.Mnemonic, test.CosmosChainConfig(node.URL), clientpool.WithObserver(observer))

	client, err := m.Create(t.Context())
	require.NoError(t, err)
	defer client.Close()

	for _, metrics := range []pool.Metrics{
		{},
		{CreatedAt: time.Now(), UseCount: 0},
		{CreatedAt: time.Now().Add(-72 * time.Hour), LastUsedAt: time.Now().Add(-time.Hour), UseCount: 1_000_000},
	} {
		require.NoError(t, m.Recycle(t.Context(), client, metrics))
	}

	_, err = clientpool.NewFromSeed(test.Mnemonic, test.EthChainConfig(node.URL), clientpool.WithObserver(observer)).Create(t.Context())
	require.Error(t, err)

	observer.mu.Lock()
	defer observer.mu.Unlock()
	assert.Equal(t, 3, observer.recycles)
	assert.Equal(t, map[string]int{"success": 1, "unsupported_address_kind": 1}, observer.outcomes)
}

func TestManagerInPool(t *testing.T) {
	node := test.NewRPCServer(t, test.ChainID)
	m := clientpool.NewFromSeed(test.Mnemonic, test.CosmosChainConfig(node.URL))

	p, err := pool.New[*signing.Client](m, pool.Config{MaxSize: 4, MinIdle: 3})
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Warmup(t.Context()))
	assert.Equal(t, uint32(3), m.Allocated())

	obj, err := p.Acquire(t.Context())
	require.NoError(t, err)
	obj.Release(t.Context())

	// released clients are reused rather than re-derived
	assert.Equal(t, uint32(3), m.Allocated())
	assert.Equal(t, int32(3), p.Stat().TotalResources())
}

func TestManagerStringHidesSeedPhrase(t *testing.T) {
	m := clientpool.NewFromSeed(test.Mnemonic, test.CosmosChainConfig("http://127.0.0.1:26657"))

	for _, s := range []string{m.String(), fmt.Sprintf("%v", m), fmt.Sprintf("%+v", m), fmt.Sprintf("%#v", m)} {
		assert.NotContains(t, s, "junk")
		assert.Contains(t, s, test.ChainID)
	}
	assert.Equal(t, test.ChainID, m.ChainConfig().ChainID)
}
